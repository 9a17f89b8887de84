package application

import "github.com/bnema/panelbot/internal/domain"

type RegisterCommand struct {
	UserID  domain.UserID
	Account domain.PanelAccount
}

// CreateServerCommand is the one-shot create path. Bounds come from the
// member's tier unless AdminBounds is set.
type CreateServerCommand struct {
	Owner       domain.PanelUserID
	Invites     int
	Offering    domain.OfferingKey
	Name        string
	MemoryMB    int
	CPUPercent  int
	DiskMB      int
	AdminBounds *domain.Bounds
}

// ManageAction is one command of the manage loop.
type ManageAction string

const (
	ManageStart     ManageAction = "start"
	ManageStop      ManageAction = "stop"
	ManageRestart   ManageAction = "restart"
	ManageKill      ManageAction = "kill"
	ManageReinstall ManageAction = "reinstall"
	ManageInfo      ManageAction = "info"
)

func ManageActions() []string {
	return []string{
		string(ManageStart),
		string(ManageStop),
		string(ManageRestart),
		string(ManageKill),
		string(ManageReinstall),
		string(ManageInfo),
	}
}
