package domain

import "time"

type SessionKind string

const (
	SessionKindCreate SessionKind = "create"
	SessionKindManage SessionKind = "manage"
)

type SessionState string

const (
	SessionAwaitingInput SessionState = "awaiting_input"
	SessionCompleted     SessionState = "completed"
	SessionCancelled     SessionState = "cancelled"
	SessionTimedOut      SessionState = "timed_out"
	SessionFailed        SessionState = "failed"
)

func (s SessionState) Terminal() bool {
	return s != SessionAwaitingInput
}

// Answer is a validated reply to one step.
type Answer struct {
	Step  string
	Value string
}

type Answers []Answer

// Get returns the value recorded for step.
func (a Answers) Get(step string) (string, bool) {
	for _, answer := range a {
		if answer.Step == step {
			return answer.Value, true
		}
	}
	return "", false
}

// Session is a snapshot of a live conversation.
type Session struct {
	ID           string
	UserID       UserID
	Kind         SessionKind
	StepIndex    int
	StepName     string
	Answers      Answers
	CreatedAt    time.Time
	LastActivity time.Time
	Deadline     time.Time
}
