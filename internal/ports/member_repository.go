package ports

import (
	"context"

	"github.com/bnema/panelbot/internal/domain"
)

type MemberRepository interface {
	GetByID(ctx context.Context, id domain.UserID) (domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	Save(ctx context.Context, member domain.Member) error
}
