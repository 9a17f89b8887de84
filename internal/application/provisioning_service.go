package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
)

const (
	unknownIdentifier domain.InstanceIdentifier = "unknown"

	defaultIOWeight = 500
)

type ProvisioningConfig struct {
	NodeID            int
	DefaultAllocation domain.AllocationID
	// Environment is the global default environment under every offering.
	Environment map[string]string
}

// ProvisioningService turns a validated request into exactly one create call.
type ProvisioningService struct {
	panel   ports.PanelApplicationAPI
	picker  *AllocationPicker
	catalog *domain.Catalog
	tiers   domain.Tiers
	cfg     ProvisioningConfig
	clock   ports.Clock
	metrics ports.Metrics
	logger  *slog.Logger
}

func NewProvisioningService(
	panel ports.PanelApplicationAPI,
	picker *AllocationPicker,
	catalog *domain.Catalog,
	tiers domain.Tiers,
	cfg ProvisioningConfig,
	clock ports.Clock,
	metrics ports.Metrics,
	logger *slog.Logger,
) *ProvisioningService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProvisioningService{
		panel:   panel,
		picker:  picker,
		catalog: catalog,
		tiers:   tiers,
		cfg:     cfg,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *ProvisioningService) Catalog() *domain.Catalog {
	return s.catalog
}

func (s *ProvisioningService) Tiers() domain.Tiers {
	return s.tiers
}

// Provision never retries. A *domain.TransportError means the server may or
// may not exist.
func (s *ProvisioningService) Provision(ctx context.Context, req domain.ProvisioningRequest, bounds domain.Bounds) (domain.InstanceIdentifier, error) {
	started := s.clock.Now()
	logger := s.logger.With(
		slog.Int("owner", int(req.Owner)),
		slog.String("offering", string(req.Offering)),
	)

	identifier, outcome, err := s.provision(ctx, req, bounds)
	s.metrics.ObserveProvision(outcome, s.clock.Now().Sub(started))

	if err != nil {
		logger.Warn("provisioning failed", slog.String("outcome", outcome), slog.Any("error", err))
		return "", err
	}
	logger.Info("server created", slog.String("identifier", string(identifier)))
	return identifier, nil
}

func (s *ProvisioningService) provision(ctx context.Context, req domain.ProvisioningRequest, bounds domain.Bounds) (domain.InstanceIdentifier, string, error) {
	offering, ok := s.catalog.Get(req.Offering)
	if !ok {
		return "", "unknown_offering", fmt.Errorf("%w: %q", domain.ErrUnknownOffering, req.Offering)
	}
	if err := req.Validate(bounds); err != nil {
		return "", "invalid", err
	}
	name, _ := domain.ValidateServerName(req.Name)

	allocation, err := s.resolveAllocation(ctx, req.AllocationID)
	if err != nil {
		return "", "no_capacity", err
	}

	payload := ports.CreateServerPayload{
		Name:        name,
		User:        int(req.Owner),
		Nest:        offering.NestID,
		Egg:         offering.EggID,
		DockerImage: offering.DockerImage,
		Startup:     offering.Startup,
		Limits: ports.ServerLimits{
			Memory: req.MemoryMB,
			Swap:   0,
			Disk:   req.DiskMB,
			IO:     defaultIOWeight,
			CPU:    req.CPUPercent,
		},
		FeatureLimits: ports.FeatureLimits{Databases: 1, Allocations: 1, Backups: 1},
		Allocation:    ports.AllocationRef{Default: int(allocation)},
		Environment:   domain.MergeEnvironment(s.cfg.Environment, offering.Environment),
	}

	resp, err := s.panel.CreateServer(ctx, payload)
	if err != nil {
		var transportErr *domain.TransportError
		if errors.As(err, &transportErr) {
			return "", "transport_error", err
		}
		return "", "transport_error", &domain.TransportError{Op: "create server", Err: err}
	}
	if resp.Status != http.StatusCreated {
		return "", "rejected", &domain.PanelRejectedError{
			Op:     "create server",
			Status: resp.Status,
			Body:   strings.TrimSpace(string(resp.Body)),
		}
	}

	return parseIdentifier(resp.Body), "created", nil
}

func (s *ProvisioningService) resolveAllocation(ctx context.Context, requested domain.AllocationID) (domain.AllocationID, error) {
	if requested > 0 {
		return requested, nil
	}

	picked, err := s.picker.PickFree(ctx, s.cfg.NodeID)
	if err == nil {
		return picked, nil
	}
	if s.cfg.DefaultAllocation > 0 {
		s.logger.Info("using default allocation", slog.Int("allocation", int(s.cfg.DefaultAllocation)))
		return s.cfg.DefaultAllocation, nil
	}
	return 0, fmt.Errorf("%w: %v", domain.ErrNoCapacity, err)
}

// CreateOneShot provisions without a conversation, using the tier bounds for
// cmd.Invites unless admin bounds are given.
func (s *ProvisioningService) CreateOneShot(ctx context.Context, cmd CreateServerCommand) (domain.InstanceIdentifier, error) {
	bounds := s.tiers.Resolve(cmd.Invites).Bounds()
	if cmd.AdminBounds != nil {
		bounds = *cmd.AdminBounds
	}

	return s.Provision(ctx, domain.ProvisioningRequest{
		Name:       cmd.Name,
		Owner:      cmd.Owner,
		Offering:   cmd.Offering,
		MemoryMB:   cmd.MemoryMB,
		CPUPercent: cmd.CPUPercent,
		DiskMB:     cmd.DiskMB,
	}, bounds)
}

func (s *ProvisioningService) DeleteServer(ctx context.Context, id domain.ServerID) error {
	if id <= 0 {
		return domain.NewValidationError("server id", "must be positive")
	}
	if err := s.panel.DeleteServer(ctx, id); err != nil {
		return fmt.Errorf("delete server %d: %w", id, err)
	}
	s.logger.Info("server deleted", slog.Int("server_id", int(id)))
	return nil
}

func (s *ProvisioningService) ListServers(ctx context.Context) ([]domain.Server, error) {
	servers, err := s.panel.ListServers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list servers: %w", err)
	}
	return servers, nil
}

func (s *ProvisioningService) NodeStats(ctx context.Context) (NodeStats, error) {
	return s.picker.Stats(ctx, s.cfg.NodeID)
}

func parseIdentifier(body []byte) domain.InstanceIdentifier {
	var created struct {
		Attributes struct {
			Identifier string `json:"identifier"`
		} `json:"attributes"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return unknownIdentifier
	}
	if identifier := strings.TrimSpace(created.Attributes.Identifier); identifier != "" {
		return domain.InstanceIdentifier(identifier)
	}
	return unknownIdentifier
}
