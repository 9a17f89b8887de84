package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports/mocks"
)

func TestMemberServiceInviteStatus(t *testing.T) {
	t.Parallel()

	repo := newMemoryMemberRepo(domain.Member{UserID: "u1", Invites: 5})
	service := NewMemberService(repo, mocks.NewMockPanelApplicationAPI(t), domain.DefaultTiers(), nil, nil)

	status, err := service.InviteStatus(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Advanced", status.Tier.Name)
	require.True(t, status.HasNext)
	assert.Equal(t, "Pro", status.Next.Name)
	assert.Equal(t, 1, status.Remaining)

	status, err = service.InviteStatus(context.Background(), "stranger")
	require.NoError(t, err)
	assert.Equal(t, "Basic", status.Tier.Name)
	assert.Equal(t, 4, status.Remaining)
}

func TestMemberServiceTopTierHasNoNext(t *testing.T) {
	t.Parallel()

	repo := newMemoryMemberRepo(domain.Member{UserID: "u1", Invites: 50})
	service := NewMemberService(repo, mocks.NewMockPanelApplicationAPI(t), domain.DefaultTiers(), nil, nil)

	status, err := service.InviteStatus(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ultimate", status.Tier.Name)
	assert.False(t, status.HasNext)
}

func TestMemberServiceInvitesClampAtZero(t *testing.T) {
	t.Parallel()

	repo := newMemoryMemberRepo()
	service := NewMemberService(repo, mocks.NewMockPanelApplicationAPI(t), domain.DefaultTiers(), nil, nil)

	member, err := service.AddInvites(context.Background(), "u1", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, member.Invites)

	member, err = service.RemoveInvites(context.Background(), "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, 0, member.Invites)

	_, err = service.AddInvites(context.Background(), "u1", 0)
	assert.True(t, domain.IsValidation(err))
}

func TestMemberServiceRegisterCreatesPanelUser(t *testing.T) {
	t.Parallel()

	repo := newMemoryMemberRepo()
	panel := mocks.NewMockPanelApplicationAPI(t)
	service := NewMemberService(repo, panel, domain.DefaultTiers(), nil, nil)

	account := domain.PanelAccount{Email: "ada@example.com", Username: "ada", FirstName: "Ada", LastName: "Lovelace"}
	panel.EXPECT().CreateUser(mockAnyContext(), account).Return(domain.PanelUserID(44), nil).Once()

	member, err := service.Register(context.Background(), RegisterCommand{UserID: "u1", Account: account})
	require.NoError(t, err)
	assert.Equal(t, domain.PanelUserID(44), member.PanelUserID)

	stored, err := repo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, stored.Linked())
}

func TestMemberServiceRegisterFallsBackToExistingUser(t *testing.T) {
	t.Parallel()

	repo := newMemoryMemberRepo(domain.Member{UserID: "u1", Invites: 2})
	panel := mocks.NewMockPanelApplicationAPI(t)
	service := NewMemberService(repo, panel, domain.DefaultTiers(), nil, nil)

	account := domain.PanelAccount{Email: "ada@example.com", Username: "ada"}
	panel.EXPECT().CreateUser(mockAnyContext(), account).
		Return(domain.PanelUserID(0), &domain.PanelRejectedError{Op: "create user", Status: 422, Body: "email taken"}).Once()
	panel.EXPECT().FindUserByEmail(mockAnyContext(), "ada@example.com").Return(domain.PanelUserID(31), nil).Once()

	member, err := service.Register(context.Background(), RegisterCommand{UserID: "u1", Account: account})
	require.NoError(t, err)
	assert.Equal(t, domain.PanelUserID(31), member.PanelUserID)
	assert.Equal(t, 2, member.Invites)
}

func TestMemberServiceRegisterSurfacesOtherRejections(t *testing.T) {
	t.Parallel()

	panel := mocks.NewMockPanelApplicationAPI(t)
	service := NewMemberService(newMemoryMemberRepo(), panel, domain.DefaultTiers(), nil, nil)

	account := domain.PanelAccount{Email: "ada@example.com", Username: "ada"}
	panel.EXPECT().CreateUser(mockAnyContext(), account).
		Return(domain.PanelUserID(0), &domain.PanelRejectedError{Op: "create user", Status: 403, Body: "forbidden"}).Once()

	_, err := service.Register(context.Background(), RegisterCommand{UserID: "u1", Account: account})

	var rejected *domain.PanelRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, 403, rejected.Status)
}

func TestMemberServiceRegisterValidatesInput(t *testing.T) {
	t.Parallel()

	service := NewMemberService(newMemoryMemberRepo(), mocks.NewMockPanelApplicationAPI(t), domain.DefaultTiers(), nil, nil)

	_, err := service.Register(context.Background(), RegisterCommand{UserID: "u1", Account: domain.PanelAccount{Email: "nope", Username: "ada"}})
	assert.True(t, domain.IsValidation(err))

	_, err = service.Register(context.Background(), RegisterCommand{UserID: "u1", Account: domain.PanelAccount{Email: "ada@example.com"}})
	assert.True(t, domain.IsValidation(err))
}

func TestMemberServiceUnlinkAndOwner(t *testing.T) {
	t.Parallel()

	repo := newMemoryMemberRepo(domain.Member{UserID: "u1", PanelUserID: 12, Invites: 4})
	service := NewMemberService(repo, mocks.NewMockPanelApplicationAPI(t), domain.DefaultTiers(), nil, nil)

	owner, err := service.Owner(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.PanelUserID(12), owner.PanelUserID)

	_, err = service.Unlink(context.Background(), "u1")
	require.NoError(t, err)

	_, err = service.Owner(context.Background(), "u1")
	require.ErrorIs(t, err, domain.ErrAccountNotLinked)

	_, err = service.Unlink(context.Background(), "u1")
	require.ErrorIs(t, err, domain.ErrAccountNotLinked)
}

func TestMemberServiceAdmins(t *testing.T) {
	t.Parallel()

	repo := newMemoryMemberRepo()
	service := NewMemberService(repo, mocks.NewMockPanelApplicationAPI(t), domain.DefaultTiers(), []domain.UserID{"root"}, nil)

	require.NoError(t, service.RequireAdmin(context.Background(), "root"))
	require.ErrorIs(t, service.RequireAdmin(context.Background(), "u1"), domain.ErrNotAdmin)

	_, err := service.SetAdmin(context.Background(), "u1", true)
	require.NoError(t, err)
	require.NoError(t, service.RequireAdmin(context.Background(), "u1"))

	_, err = service.SetAdmin(context.Background(), "u1", false)
	require.NoError(t, err)
	require.ErrorIs(t, service.RequireAdmin(context.Background(), "u1"), domain.ErrNotAdmin)
}

func TestMemberServiceGetWrapsRepositoryFailure(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockMemberRepository(t)
	service := NewMemberService(repo, mocks.NewMockPanelApplicationAPI(t), domain.DefaultTiers(), nil, nil)

	repo.EXPECT().GetByID(mockAnyContext(), domain.UserID("u1")).Return(domain.Member{}, errors.New("disk full")).Once()

	_, err := service.Get(context.Background(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get member by id: disk full")
}

func TestMemberServiceResolveOwnerByEmail(t *testing.T) {
	t.Parallel()

	panel := mocks.NewMockPanelApplicationAPI(t)
	service := NewMemberService(newMemoryMemberRepo(), panel, domain.DefaultTiers(), nil, nil)

	panel.EXPECT().FindUserByEmail(mockAnyContext(), "ada@example.com").Return(domain.PanelUserID(31), nil).Once()

	id, err := service.ResolveOwnerByEmail(context.Background(), " ada@example.com ")
	require.NoError(t, err)
	assert.Equal(t, domain.PanelUserID(31), id)

	_, err = service.ResolveOwnerByEmail(context.Background(), "")
	assert.True(t, domain.IsValidation(err))
}
