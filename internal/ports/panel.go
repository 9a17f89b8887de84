package ports

import (
	"context"

	"github.com/bnema/panelbot/internal/domain"
)

// PanelResponse is a raw status and body from the panel.
type PanelResponse struct {
	Status int
	Body   []byte
}

// CreateServerPayload mirrors the panel's create-server request body.
type CreateServerPayload struct {
	Name          string            `json:"name"`
	User          int               `json:"user"`
	Nest          int               `json:"nest"`
	Egg           int               `json:"egg"`
	DockerImage   string            `json:"docker_image"`
	Startup       string            `json:"startup"`
	Limits        ServerLimits      `json:"limits"`
	FeatureLimits FeatureLimits     `json:"feature_limits"`
	Allocation    AllocationRef     `json:"allocation"`
	Environment   map[string]string `json:"environment"`
}

type ServerLimits struct {
	Memory int `json:"memory"`
	Swap   int `json:"swap"`
	Disk   int `json:"disk"`
	IO     int `json:"io"`
	CPU    int `json:"cpu"`
}

type FeatureLimits struct {
	Databases   int `json:"databases"`
	Allocations int `json:"allocations"`
	Backups     int `json:"backups"`
}

type AllocationRef struct {
	Default int `json:"default"`
}

// PanelApplicationAPI is the admin-scope panel surface. Implementations hold
// the application credential; it is never passed per call.
type PanelApplicationAPI interface {
	ListAllocations(ctx context.Context, nodeID int) ([]domain.Allocation, error)
	// CreateServer returns the raw response; only transport failures are errors.
	CreateServer(ctx context.Context, payload CreateServerPayload) (PanelResponse, error)
	DeleteServer(ctx context.Context, id domain.ServerID) error
	ListServers(ctx context.Context) ([]domain.Server, error)
	FindUserByEmail(ctx context.Context, email string) (domain.PanelUserID, error)
	CreateUser(ctx context.Context, account domain.PanelAccount) (domain.PanelUserID, error)
}

// PanelClientAPI is the self-service surface, authorized per call with the
// acting user's client credential.
type PanelClientAPI interface {
	SendPowerSignal(ctx context.Context, key domain.ClientKey, identifier domain.InstanceIdentifier, signal domain.PowerSignal) error
	Reinstall(ctx context.Context, key domain.ClientKey, identifier domain.InstanceIdentifier) error
	GetServer(ctx context.Context, key domain.ClientKey, identifier domain.InstanceIdentifier) (domain.ServerDetails, error)
}
