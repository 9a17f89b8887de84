package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/panelbot/internal/domain"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type memoryMemberRepo struct {
	mu      sync.Mutex
	members map[domain.UserID]domain.Member
}

func newMemoryMemberRepo(members ...domain.Member) *memoryMemberRepo {
	repo := &memoryMemberRepo{members: map[domain.UserID]domain.Member{}}
	for _, member := range members {
		repo.members[member.UserID] = member
	}
	return repo
}

func (r *memoryMemberRepo) GetByID(ctx context.Context, id domain.UserID) (domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	member, ok := r.members[id]
	if !ok {
		return domain.Member{}, domain.ErrMemberNotFound
	}
	return member, nil
}

func (r *memoryMemberRepo) List(ctx context.Context) ([]domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	members := make([]domain.Member, 0, len(r.members))
	for _, member := range r.members {
		members = append(members, member)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].UserID < members[j].UserID })
	return members, nil
}

func (r *memoryMemberRepo) Save(ctx context.Context, member domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[member.UserID] = member
	return nil
}

type recordingMetrics struct {
	mu         sync.Mutex
	provisions []string
	durations  []time.Duration
	sessions   []domain.SessionState
	actions    []string
}

func (m *recordingMetrics) ObserveProvision(outcome string, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.provisions = append(m.provisions, outcome)
	m.durations = append(m.durations, elapsed)
}

func (m *recordingMetrics) ObserveSessionEnd(kind domain.SessionKind, state domain.SessionState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = append(m.sessions, state)
}

func (m *recordingMetrics) ObserveManageAction(action string, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, action+":"+outcome)
}

func mustCatalog() *domain.Catalog {
	catalog, err := domain.NewCatalog(domain.DefaultOfferings())
	if err != nil {
		panic(err)
	}
	return catalog
}
