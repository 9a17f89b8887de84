package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
)

// AllocationPicker reads a node's allocations once per call. Nothing is
// reserved; the create call decides who wins a race.
type AllocationPicker struct {
	panel  ports.PanelApplicationAPI
	logger *slog.Logger
}

func NewAllocationPicker(panel ports.PanelApplicationAPI, logger *slog.Logger) *AllocationPicker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AllocationPicker{panel: panel, logger: logger}
}

// PickFree returns the first unassigned allocation in panel order.
func (p *AllocationPicker) PickFree(ctx context.Context, nodeID int) (domain.AllocationID, error) {
	allocations, err := p.panel.ListAllocations(ctx, nodeID)
	if err != nil {
		p.logger.Warn("allocation listing failed", slog.Int("node_id", nodeID), slog.Any("error", err))
		return 0, fmt.Errorf("%w: %v", domain.ErrAllocationNotFound, err)
	}

	for _, allocation := range allocations {
		if !allocation.Assigned {
			return allocation.ID, nil
		}
	}
	return 0, domain.ErrAllocationNotFound
}

func (p *AllocationPicker) Stats(ctx context.Context, nodeID int) (NodeStats, error) {
	allocations, err := p.panel.ListAllocations(ctx, nodeID)
	if err != nil {
		return NodeStats{}, fmt.Errorf("list allocations: %w", err)
	}

	stats := NodeStats{NodeID: nodeID, Total: len(allocations)}
	for _, allocation := range allocations {
		if !allocation.Assigned {
			stats.Free++
		}
	}
	return stats, nil
}
