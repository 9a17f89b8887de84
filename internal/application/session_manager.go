package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
)

const DefaultStepTimeout = 60 * time.Second

var DefaultCancelWords = []string{"cancel", "exit"}

// Step is one prompt of a scripted flow. Validate returns the normalized
// answer or a *domain.ValidationError.
type Step struct {
	Name     string
	Prompt   string
	Validate func(raw string) (string, error)
	Timeout  time.Duration
}

// Flow is a scripted conversation. Complete receives the answers in step order.
// A looping flow stays on its last step after each Complete call.
type Flow struct {
	Kind     domain.SessionKind
	Steps    []Step
	Loop     bool
	Complete func(ctx context.Context, answers domain.Answers) (string, error)
}

// Outcome describes what one Start or Submit did to a session.
type Outcome struct {
	Session domain.Session
	State   domain.SessionState
	// Prompt is the question for the step now awaiting input.
	Prompt string
	Result string
	// Err is a rejected reply or a failed completion. The session state tells
	// which.
	Err error
}

type SessionConfig struct {
	Timeout     time.Duration
	CancelWords []string
}

type liveSession struct {
	session domain.Session
	flow    Flow
	busy    bool
}

// SessionManager owns every live conversation, at most one per user.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[domain.UserID]*liveSession

	clock       ports.Clock
	timeout     time.Duration
	cancelWords map[string]struct{}
	metrics     ports.Metrics
	logger      *slog.Logger
}

func NewSessionManager(clock ports.Clock, cfg SessionConfig, metrics ports.Metrics, logger *slog.Logger) *SessionManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultStepTimeout
	}
	words := cfg.CancelWords
	if len(words) == 0 {
		words = DefaultCancelWords
	}

	cancelWords := make(map[string]struct{}, len(words))
	for _, word := range words {
		cancelWords[strings.ToLower(strings.TrimSpace(word))] = struct{}{}
	}

	return &SessionManager{
		sessions:    make(map[domain.UserID]*liveSession),
		clock:       clock,
		timeout:     cfg.Timeout,
		cancelWords: cancelWords,
		metrics:     metrics,
		logger:      logger,
	}
}

// Start opens a session for userID. A live, unexpired session blocks it.
func (m *SessionManager) Start(userID domain.UserID, flow Flow) (Outcome, error) {
	if len(flow.Steps) == 0 {
		return Outcome{}, errors.New("flow has no steps")
	}
	if flow.Complete == nil {
		return Outcome{}, errors.New("flow has no completion handler")
	}

	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.sessions[userID]; ok {
		if existing.busy || now.Before(existing.session.Deadline) {
			return Outcome{Session: existing.session, State: domain.SessionAwaitingInput}, domain.ErrSessionAlreadyActive
		}
		m.endLocked(existing, domain.SessionTimedOut)
	}

	first := flow.Steps[0]
	live := &liveSession{
		session: domain.Session{
			ID:           uuid.NewString(),
			UserID:       userID,
			Kind:         flow.Kind,
			StepIndex:    0,
			StepName:     first.Name,
			CreatedAt:    now,
			LastActivity: now,
			Deadline:     now.Add(m.stepTimeout(first)),
		},
		flow: flow,
	}
	m.sessions[userID] = live

	m.logger.Info("session started",
		slog.String("user_id", string(userID)),
		slog.String("session_id", live.session.ID),
		slog.String("flow", string(flow.Kind)),
	)

	return Outcome{Session: live.session, State: domain.SessionAwaitingInput, Prompt: first.Prompt}, nil
}

// Submit feeds one reply to the user's session. The returned error is only
// set when there is no usable session; rejected replies and failed
// completions are reported through Outcome.
func (m *SessionManager) Submit(ctx context.Context, userID domain.UserID, raw string) (Outcome, error) {
	now := m.clock.Now()

	m.mu.Lock()
	live, ok := m.sessions[userID]
	if !ok {
		m.mu.Unlock()
		return Outcome{}, domain.ErrNoActiveSession
	}
	if live.busy {
		snapshot := live.session
		m.mu.Unlock()
		return Outcome{Session: snapshot, State: domain.SessionAwaitingInput}, domain.ErrSessionBusy
	}
	if !now.Before(live.session.Deadline) {
		m.endLocked(live, domain.SessionTimedOut)
		snapshot := live.session
		m.mu.Unlock()
		return Outcome{Session: snapshot, State: domain.SessionTimedOut}, domain.ErrSessionTimedOut
	}
	if m.isCancelWord(raw) {
		m.endLocked(live, domain.SessionCancelled)
		snapshot := live.session
		m.mu.Unlock()
		return Outcome{Session: snapshot, State: domain.SessionCancelled, Err: domain.ErrSessionCancelled}, nil
	}

	step := live.flow.Steps[live.session.StepIndex]
	live.session.LastActivity = now
	live.session.Deadline = now.Add(m.stepTimeout(step))

	value, err := step.Validate(raw)
	if err != nil {
		snapshot := live.session
		m.mu.Unlock()
		return Outcome{Session: snapshot, State: domain.SessionAwaitingInput, Prompt: step.Prompt, Err: err}, nil
	}

	live.session.Answers = append(live.session.Answers, domain.Answer{Step: step.Name, Value: value})

	last := live.session.StepIndex == len(live.flow.Steps)-1
	if !last {
		live.session.StepIndex++
		next := live.flow.Steps[live.session.StepIndex]
		live.session.StepName = next.Name
		live.session.Deadline = now.Add(m.stepTimeout(next))
		snapshot := live.session
		m.mu.Unlock()
		return Outcome{Session: snapshot, State: domain.SessionAwaitingInput, Prompt: next.Prompt}, nil
	}

	live.busy = true
	sessionID := live.session.ID
	answers := append(domain.Answers(nil), live.session.Answers...)
	flow := live.flow
	m.mu.Unlock()

	result, completeErr := flow.Complete(ctx, answers)

	m.mu.Lock()
	defer m.mu.Unlock()

	current, stillLive := m.sessions[userID]
	if !stillLive || current.session.ID != sessionID {
		// Cancelled while the handler ran. The result still belongs to the user.
		snapshot := live.session
		return Outcome{Session: snapshot, State: domain.SessionCancelled, Result: result, Err: completeErr}, nil
	}

	current.busy = false
	if flow.Loop {
		current.session.Answers = current.session.Answers[:len(current.session.Answers)-1]
		current.session.LastActivity = m.clock.Now()
		current.session.Deadline = current.session.LastActivity.Add(m.stepTimeout(step))
		return Outcome{Session: current.session, State: domain.SessionAwaitingInput, Prompt: step.Prompt, Result: result, Err: completeErr}, nil
	}

	state := domain.SessionCompleted
	if completeErr != nil {
		state = domain.SessionFailed
	}
	m.endLocked(current, state)
	return Outcome{Session: current.session, State: state, Result: result, Err: completeErr}, nil
}

// Cancel ends the user's session. A completion handler already running is
// not interrupted; its result is discarded from the table.
func (m *SessionManager) Cancel(userID domain.UserID) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	live, ok := m.sessions[userID]
	if !ok {
		return domain.Session{}, domain.ErrNoActiveSession
	}
	m.endLocked(live, domain.SessionCancelled)
	return live.session, nil
}

func (m *SessionManager) Active(userID domain.UserID) (domain.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	live, ok := m.sessions[userID]
	if !ok {
		return domain.Session{}, false
	}
	return live.session, true
}

// Sweep evicts every idle session whose deadline is not after now.
func (m *SessionManager) Sweep(now time.Time) []domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expired []domain.Session
	for _, live := range m.sessions {
		if live.busy || now.Before(live.session.Deadline) {
			continue
		}
		m.endLocked(live, domain.SessionTimedOut)
		expired = append(expired, live.session)
	}
	return expired
}

// RunSweeper calls Sweep every interval until ctx is done, handing each
// evicted session to notify.
func (m *SessionManager) RunSweeper(ctx context.Context, interval time.Duration, notify func(domain.Session)) error {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for _, session := range m.Sweep(m.clock.Now()) {
				if notify != nil {
					notify(session)
				}
			}
		}
	}
}

// endLocked removes live from the table if it is still the user's session.
func (m *SessionManager) endLocked(live *liveSession, state domain.SessionState) {
	current, ok := m.sessions[live.session.UserID]
	if !ok || current.session.ID != live.session.ID {
		return
	}
	delete(m.sessions, live.session.UserID)

	m.metrics.ObserveSessionEnd(live.session.Kind, state)
	m.logger.Info("session ended",
		slog.String("user_id", string(live.session.UserID)),
		slog.String("session_id", live.session.ID),
		slog.String("flow", string(live.session.Kind)),
		slog.String("state", string(state)),
	)
}

func (m *SessionManager) stepTimeout(step Step) time.Duration {
	if step.Timeout > 0 {
		return step.Timeout
	}
	return m.timeout
}

func (m *SessionManager) isCancelWord(raw string) bool {
	_, ok := m.cancelWords[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}
