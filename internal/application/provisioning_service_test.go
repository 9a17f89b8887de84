package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
	"github.com/bnema/panelbot/internal/ports/mocks"
)

func newTestProvisioner(t *testing.T, app *mocks.MockPanelApplicationAPI, cfg ProvisioningConfig, metrics ports.Metrics) *ProvisioningService {
	t.Helper()
	return NewProvisioningService(app, NewAllocationPicker(app, nil), mustCatalog(), domain.DefaultTiers(), cfg, fixedClock{now: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}, metrics, nil)
}

func validRequest() domain.ProvisioningRequest {
	return domain.ProvisioningRequest{
		Name:       "Test",
		Owner:      12,
		Offering:   "paper",
		MemoryMB:   2048,
		CPUPercent: 100,
		DiskMB:     5000,
	}
}

var basicBounds = domain.Bounds{MaxMemoryMB: 4096, MaxCPUPercent: 150, MaxDiskMB: 10000}

func TestProvisionRejectsUnknownOfferingBeforeAnyCall(t *testing.T) {
	t.Parallel()

	app := mocks.NewMockPanelApplicationAPI(t)
	metrics := &recordingMetrics{}
	service := newTestProvisioner(t, app, ProvisioningConfig{NodeID: 1}, metrics)

	req := validRequest()
	req.Offering = "bukkit"

	_, err := service.Provision(context.Background(), req, basicBounds)
	require.ErrorIs(t, err, domain.ErrUnknownOffering)
	assert.Equal(t, []string{"unknown_offering"}, metrics.provisions)
}

func TestProvisionValidatesLimitsBeforeAnyCall(t *testing.T) {
	t.Parallel()

	app := mocks.NewMockPanelApplicationAPI(t)
	service := newTestProvisioner(t, app, ProvisioningConfig{NodeID: 1}, nil)

	req := validRequest()
	req.MemoryMB = 8000

	_, err := service.Provision(context.Background(), req, basicBounds)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestProvisionUsesRequestedAllocationWithoutListing(t *testing.T) {
	t.Parallel()

	app := mocks.NewMockPanelApplicationAPI(t)
	service := newTestProvisioner(t, app, ProvisioningConfig{NodeID: 1}, nil)

	app.EXPECT().CreateServer(mockAnyContext(), mock.MatchedBy(func(payload ports.CreateServerPayload) bool {
		return payload.Allocation.Default == 42
	})).Return(ports.PanelResponse{Status: 201, Body: []byte(`{"attributes":{"identifier":"abc123"}}`)}, nil).Once()

	req := validRequest()
	req.AllocationID = 42

	identifier, err := service.Provision(context.Background(), req, basicBounds)
	require.NoError(t, err)
	assert.Equal(t, domain.InstanceIdentifier("abc123"), identifier)
}

func TestProvisionFallsBackToDefaultAllocation(t *testing.T) {
	t.Parallel()

	app := mocks.NewMockPanelApplicationAPI(t)
	service := newTestProvisioner(t, app, ProvisioningConfig{NodeID: 1, DefaultAllocation: 99}, nil)

	app.EXPECT().ListAllocations(mockAnyContext(), 1).Return(nil, &domain.TransportError{Op: "list allocations", Err: errors.New("down")}).Once()
	app.EXPECT().CreateServer(mockAnyContext(), mock.MatchedBy(func(payload ports.CreateServerPayload) bool {
		return payload.Allocation.Default == 99
	})).Return(ports.PanelResponse{Status: 201, Body: []byte(`{}`)}, nil).Once()

	identifier, err := service.Provision(context.Background(), validRequest(), basicBounds)
	require.NoError(t, err)
	assert.Equal(t, domain.InstanceIdentifier("unknown"), identifier)
}

func TestProvisionMapsRejectedStatus(t *testing.T) {
	t.Parallel()

	app := mocks.NewMockPanelApplicationAPI(t)
	metrics := &recordingMetrics{}
	service := newTestProvisioner(t, app, ProvisioningConfig{NodeID: 1}, metrics)

	app.EXPECT().ListAllocations(mockAnyContext(), 1).Return([]domain.Allocation{{ID: 7}}, nil).Once()
	app.EXPECT().CreateServer(mockAnyContext(), mock.Anything).
		Return(ports.PanelResponse{Status: 422, Body: []byte(`{"errors":[{"detail":"egg missing"}]}`)}, nil).Once()

	_, err := service.Provision(context.Background(), validRequest(), basicBounds)

	var rejected *domain.PanelRejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, 422, rejected.Status)
	assert.Contains(t, rejected.Body, "egg missing")
	assert.Equal(t, []string{"rejected"}, metrics.provisions)
}

func TestProvisionTransportFailureIsNotRetried(t *testing.T) {
	t.Parallel()

	app := mocks.NewMockPanelApplicationAPI(t)
	service := newTestProvisioner(t, app, ProvisioningConfig{NodeID: 1}, nil)

	app.EXPECT().ListAllocations(mockAnyContext(), 1).Return([]domain.Allocation{{ID: 7}}, nil).Once()
	app.EXPECT().CreateServer(mockAnyContext(), mock.Anything).
		Return(ports.PanelResponse{}, &domain.TransportError{Op: "create server", Err: context.DeadlineExceeded}).Once()

	_, err := service.Provision(context.Background(), validRequest(), basicBounds)

	var transportErr *domain.TransportError
	require.True(t, errors.As(err, &transportErr))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProvisionOfferingEnvironmentOverridesDefaults(t *testing.T) {
	t.Parallel()

	app := mocks.NewMockPanelApplicationAPI(t)
	service := newTestProvisioner(t, app, ProvisioningConfig{
		NodeID:      1,
		Environment: map[string]string{"VERSION": "latest", "EULA": "FALSE"},
	}, nil)

	app.EXPECT().ListAllocations(mockAnyContext(), 1).Return([]domain.Allocation{{ID: 7}}, nil).Once()
	app.EXPECT().CreateServer(mockAnyContext(), mock.MatchedBy(func(payload ports.CreateServerPayload) bool {
		return payload.Environment["EULA"] == "TRUE" &&
			payload.Environment["VERSION"] == "latest" &&
			payload.Environment["MINECRAFT_VERSION"] == "latest" &&
			payload.DockerImage == "ghcr.io/pterodactyl/yolks:java_21"
	})).Return(ports.PanelResponse{Status: 201, Body: []byte(`{"attributes":{"identifier":"abc123"}}`)}, nil).Once()

	_, err := service.Provision(context.Background(), validRequest(), basicBounds)
	require.NoError(t, err)
}

func TestCreateOneShotUsesTierOrAdminBounds(t *testing.T) {
	t.Parallel()

	app := mocks.NewMockPanelApplicationAPI(t)
	service := newTestProvisioner(t, app, ProvisioningConfig{NodeID: 1}, nil)

	cmd := CreateServerCommand{
		Owner:      12,
		Invites:    0,
		Offering:   "paper",
		Name:       "Big",
		MemoryMB:   20000,
		CPUPercent: 100,
		DiskMB:     5000,
	}

	_, err := service.CreateOneShot(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	app.EXPECT().ListAllocations(mockAnyContext(), 1).Return([]domain.Allocation{{ID: 7}}, nil).Once()
	app.EXPECT().CreateServer(mockAnyContext(), mock.Anything).
		Return(ports.PanelResponse{Status: 201, Body: []byte(`{"attributes":{"identifier":"big1"}}`)}, nil).Once()

	cmd.AdminBounds = &domain.Bounds{MaxMemoryMB: 32768, MaxCPUPercent: 800, MaxDiskMB: 100000}
	identifier, err := service.CreateOneShot(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, domain.InstanceIdentifier("big1"), identifier)
}

func TestDeleteServerRejectsInvalidID(t *testing.T) {
	t.Parallel()

	app := mocks.NewMockPanelApplicationAPI(t)
	service := newTestProvisioner(t, app, ProvisioningConfig{NodeID: 1}, nil)

	err := service.DeleteServer(context.Background(), 0)
	require.Error(t, err)

	app.EXPECT().DeleteServer(mockAnyContext(), domain.ServerID(4)).Return(nil).Once()
	require.NoError(t, service.DeleteServer(context.Background(), 4))
}

func TestProvisionObservesElapsedTime(t *testing.T) {
	t.Parallel()

	app := mocks.NewMockPanelApplicationAPI(t)
	clock := mocks.NewMockClock(t)
	metrics := &recordingMetrics{}
	service := NewProvisioningService(app, NewAllocationPicker(app, nil), mustCatalog(), domain.DefaultTiers(), ProvisioningConfig{NodeID: 1}, clock, metrics, nil)

	started := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(started).Once()
	clock.EXPECT().Now().Return(started.Add(3 * time.Second)).Once()

	app.EXPECT().CreateServer(mockAnyContext(), mock.Anything).
		Return(ports.PanelResponse{Status: 201, Body: []byte(`{"attributes":{"identifier":"abc123"}}`)}, nil).Once()

	req := validRequest()
	req.AllocationID = 42

	_, err := service.Provision(context.Background(), req, basicBounds)
	require.NoError(t, err)
	assert.Equal(t, []string{"created"}, metrics.provisions)
	assert.Equal(t, []time.Duration{3 * time.Second}, metrics.durations)
}
