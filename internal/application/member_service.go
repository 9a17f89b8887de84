package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
)

type MemberService struct {
	repo   ports.MemberRepository
	panel  ports.PanelApplicationAPI
	tiers  domain.Tiers
	admins map[domain.UserID]struct{}
	logger *slog.Logger
}

// NewMemberService treats bootstrapAdmins as admins regardless of stored state.
func NewMemberService(repo ports.MemberRepository, panel ports.PanelApplicationAPI, tiers domain.Tiers, bootstrapAdmins []domain.UserID, logger *slog.Logger) *MemberService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	admins := make(map[domain.UserID]struct{}, len(bootstrapAdmins))
	for _, id := range bootstrapAdmins {
		admins[id] = struct{}{}
	}
	return &MemberService{repo: repo, panel: panel, tiers: tiers, admins: admins, logger: logger}
}

// Get returns the stored member, or a fresh one with no invites.
func (s *MemberService) Get(ctx context.Context, id domain.UserID) (domain.Member, error) {
	if strings.TrimSpace(string(id)) == "" {
		return domain.Member{}, errors.New("user id is required")
	}

	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrMemberNotFound) {
			return domain.Member{}, fmt.Errorf("get member by id: %w", err)
		}
		return domain.Member{UserID: id}, nil
	}
	return member, nil
}

func (s *MemberService) List(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (s *MemberService) InviteStatus(ctx context.Context, id domain.UserID) (InviteStatus, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return InviteStatus{}, err
	}

	tier := s.tiers.Resolve(member.Invites)
	status := InviteStatus{Member: member, Tier: tier}
	if next, ok := s.tiers.Next(tier); ok {
		status.Next = next
		status.HasNext = true
		status.Remaining = next.MinInvites - member.Invites
	}
	return status, nil
}

// Owner returns the linked panel account and invite count for id.
func (s *MemberService) Owner(ctx context.Context, id domain.UserID) (domain.Member, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return domain.Member{}, err
	}
	if !member.Linked() {
		return domain.Member{}, domain.ErrAccountNotLinked
	}
	return member, nil
}

func (s *MemberService) AddInvites(ctx context.Context, id domain.UserID, count int) (domain.Member, error) {
	if count <= 0 {
		return domain.Member{}, domain.NewValidationError("count", "must be positive")
	}
	return s.update(ctx, id, func(member *domain.Member) {
		member.Invites += count
	})
}

// RemoveInvites never takes the count below zero.
func (s *MemberService) RemoveInvites(ctx context.Context, id domain.UserID, count int) (domain.Member, error) {
	if count <= 0 {
		return domain.Member{}, domain.NewValidationError("count", "must be positive")
	}
	return s.update(ctx, id, func(member *domain.Member) {
		member.Invites -= count
		if member.Invites < 0 {
			member.Invites = 0
		}
	})
}

// Register creates a panel user for the account and links it. When the panel
// reports the account already exists, the existing user is linked instead.
func (s *MemberService) Register(ctx context.Context, cmd RegisterCommand) (domain.Member, error) {
	account := cmd.Account
	account.Email = strings.TrimSpace(account.Email)
	if account.Email == "" || !strings.Contains(account.Email, "@") {
		return domain.Member{}, domain.NewValidationError("email", "must be a valid address")
	}
	if strings.TrimSpace(account.Username) == "" {
		return domain.Member{}, domain.NewValidationError("username", "must not be empty")
	}

	panelID, err := s.panel.CreateUser(ctx, account)
	if err != nil {
		var rejected *domain.PanelRejectedError
		if !errors.As(err, &rejected) || rejected.Status != http.StatusUnprocessableEntity {
			return domain.Member{}, fmt.Errorf("create panel user: %w", err)
		}

		panelID, err = s.panel.FindUserByEmail(ctx, account.Email)
		if err != nil {
			return domain.Member{}, fmt.Errorf("find existing panel user: %w", err)
		}
	}

	member, err := s.update(ctx, cmd.UserID, func(member *domain.Member) {
		member.PanelUserID = panelID
	})
	if err != nil {
		return domain.Member{}, err
	}

	s.logger.Info("member linked", slog.String("user_id", string(cmd.UserID)), slog.Int("panel_user_id", int(panelID)))
	return member, nil
}

func (s *MemberService) Unlink(ctx context.Context, id domain.UserID) (domain.Member, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return domain.Member{}, err
	}
	if !member.Linked() {
		return domain.Member{}, domain.ErrAccountNotLinked
	}

	member.PanelUserID = 0
	if err := s.repo.Save(ctx, member); err != nil {
		return domain.Member{}, fmt.Errorf("save member: %w", err)
	}
	return member, nil
}

func (s *MemberService) SetAdmin(ctx context.Context, id domain.UserID, admin bool) (domain.Member, error) {
	return s.update(ctx, id, func(member *domain.Member) {
		member.Admin = admin
	})
}

func (s *MemberService) IsAdmin(ctx context.Context, id domain.UserID) (bool, error) {
	if _, ok := s.admins[id]; ok {
		return true, nil
	}
	member, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return member.Admin, nil
}

func (s *MemberService) RequireAdmin(ctx context.Context, id domain.UserID) error {
	admin, err := s.IsAdmin(ctx, id)
	if err != nil {
		return err
	}
	if !admin {
		return domain.ErrNotAdmin
	}
	return nil
}

func (s *MemberService) ResolveOwnerByEmail(ctx context.Context, email string) (domain.PanelUserID, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return 0, domain.NewValidationError("email", "must not be empty")
	}
	id, err := s.panel.FindUserByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("find panel user %s: %w", email, err)
	}
	return id, nil
}

func (s *MemberService) update(ctx context.Context, id domain.UserID, mutate func(*domain.Member)) (domain.Member, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return domain.Member{}, err
	}

	mutate(&member)
	if err := member.Validate(); err != nil {
		return domain.Member{}, err
	}
	if err := s.repo.Save(ctx, member); err != nil {
		return domain.Member{}, fmt.Errorf("save member: %w", err)
	}
	return member, nil
}
