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

func TestPickFree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		allocations []domain.Allocation
		listErr     error
		want        domain.AllocationID
		wantErr     error
	}{
		{
			name:        "first unassigned in panel order",
			allocations: []domain.Allocation{{ID: 9, Assigned: true}, {ID: 12}, {ID: 3}},
			want:        12,
		},
		{
			name:        "all assigned",
			allocations: []domain.Allocation{{ID: 9, Assigned: true}},
			wantErr:     domain.ErrAllocationNotFound,
		},
		{
			name:    "empty node",
			wantErr: domain.ErrAllocationNotFound,
		},
		{
			name:    "transport failure",
			listErr: &domain.TransportError{Op: "list allocations", Err: errors.New("connection refused")},
			wantErr: domain.ErrAllocationNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			app := mocks.NewMockPanelApplicationAPI(t)
			app.EXPECT().ListAllocations(mockAnyContext(), 2).Return(tc.allocations, tc.listErr).Once()

			got, err := NewAllocationPicker(app, nil).PickFree(context.Background(), 2)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAllocationStats(t *testing.T) {
	t.Parallel()

	app := mocks.NewMockPanelApplicationAPI(t)
	app.EXPECT().ListAllocations(mockAnyContext(), 2).Return([]domain.Allocation{
		{ID: 1, Assigned: true},
		{ID: 2},
		{ID: 3},
	}, nil).Once()

	stats, err := NewAllocationPicker(app, nil).Stats(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, NodeStats{NodeID: 2, Free: 2, Total: 3}, stats)
}
