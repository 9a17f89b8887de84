package application

import "github.com/bnema/panelbot/internal/domain"

type InviteStatus struct {
	Member  domain.Member
	Tier    domain.Tier
	Next    domain.Tier
	HasNext bool
	// Remaining is the invite count still needed for Next.
	Remaining int
}

type NodeStats struct {
	NodeID int
	Free   int
	Total  int
}
