package cmd

import "github.com/bnema/panelbot/internal/adapters/render/reply"

// userError keeps err for errors.Is while printing the reply text.
type userError struct {
	err error
}

func (e *userError) Error() string {
	return reply.ErrorText(e.err)
}

func (e *userError) Unwrap() error {
	return e.err
}

func asUserError(err error) error {
	if err == nil {
		return nil
	}
	return &userError{err: err}
}
