package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOffering      = errors.New("unknown offering")
	ErrNoCapacity           = errors.New("no free allocation on node and no default allocation configured")
	ErrAllocationNotFound   = errors.New("no free allocation found")
	ErrSessionAlreadyActive = errors.New("a session is already active")
	ErrSessionTimedOut      = errors.New("session timed out")
	ErrSessionCancelled     = errors.New("session cancelled")
	ErrNoActiveSession      = errors.New("no active session")
	ErrSessionBusy          = errors.New("previous reply is still being processed")
	ErrMemberNotFound       = errors.New("member not found")
	ErrAccountNotLinked     = errors.New("panel account is not linked")
	ErrCredentialNotFound   = errors.New("client credential not found")
	ErrPanelUserNotFound    = errors.New("panel user not found")
	ErrNotAdmin             = errors.New("admin permission required")
)

// ValidationError is bad user input. It is always recoverable by re-prompting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// PanelRejectedError carries a non-success panel status and body.
type PanelRejectedError struct {
	Op     string
	Status int
	Body   string
}

func (e *PanelRejectedError) Error() string {
	return fmt.Sprintf("%s: panel responded %d: %s", e.Op, e.Status, e.Body)
}

// TransportError is a network-level failure or client-side timeout. The remote
// side may or may not have acted on the request.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
