package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
	"github.com/bnema/panelbot/internal/ports/mocks"
)

type conversationFixture struct {
	service *ConversationService
	app     *mocks.MockPanelApplicationAPI
	client  *mocks.MockPanelClientAPI
	store   *mocks.MockSecretStore
	metrics *recordingMetrics
}

func newConversationFixture(t *testing.T, cfg ProvisioningConfig) conversationFixture {
	t.Helper()

	app := mocks.NewMockPanelApplicationAPI(t)
	client := mocks.NewMockPanelClientAPI(t)
	store := mocks.NewMockSecretStore(t)
	metrics := &recordingMetrics{}
	clock := newManualClock()

	if cfg.NodeID == 0 {
		cfg.NodeID = 1
	}
	if cfg.Environment == nil {
		cfg.Environment = domain.DefaultEnvironment()
	}

	provisioner := NewProvisioningService(app, NewAllocationPicker(app, nil), mustCatalog(), domain.DefaultTiers(), cfg, clock, metrics, nil)
	service := NewConversationService(
		NewSessionManager(clock, SessionConfig{}, metrics, nil),
		provisioner,
		NewManageService(client, metrics, nil),
		NewCredentialService(store),
	)

	return conversationFixture{service: service, app: app, client: client, store: store, metrics: metrics}
}

func submitAll(t *testing.T, service *ConversationService, user domain.UserID, replies ...string) Outcome {
	t.Helper()

	var outcome Outcome
	for _, reply := range replies {
		var err error
		outcome, err = service.Submit(context.Background(), user, reply)
		require.NoError(t, err)
	}
	return outcome
}

func TestCreateFlowProvisionsAdvancedTierServer(t *testing.T) {
	t.Parallel()

	f := newConversationFixture(t, ProvisioningConfig{NodeID: 1})

	f.app.EXPECT().ListAllocations(mockAnyContext(), 1).Return([]domain.Allocation{
		{ID: 3, Assigned: true},
		{ID: 7, Assigned: false},
		{ID: 8, Assigned: false},
	}, nil).Once()
	f.app.EXPECT().CreateServer(mockAnyContext(), mock.MatchedBy(func(payload ports.CreateServerPayload) bool {
		return payload.Name == "Test" &&
			payload.User == 12 &&
			payload.Nest == 1 && payload.Egg == 3 &&
			payload.Limits == ports.ServerLimits{Memory: 4096, Swap: 0, Disk: 12000, IO: 500, CPU: 150} &&
			payload.FeatureLimits == ports.FeatureLimits{Databases: 1, Allocations: 1, Backups: 1} &&
			payload.Allocation.Default == 7 &&
			payload.Environment["SERVER_JARFILE"] == "server.jar" &&
			payload.Environment["SPONGE_VERSION"] == "stable-7"
	})).Return(ports.PanelResponse{Status: 201, Body: []byte(`{"attributes":{"identifier":"abc123"}}`)}, nil).Once()

	started, err := f.service.StartCreate(context.Background(), "u1", 12, 5)
	require.NoError(t, err)
	assert.Contains(t, started.Prompt, "paper")

	memoryPrompt := submitAll(t, f.service, "u1", "paper", "Test")
	assert.Contains(t, memoryPrompt.Prompt, "6144")
	assert.Contains(t, memoryPrompt.Prompt, "Advanced")

	outcome := submitAll(t, f.service, "u1", "4096", "150", "12000")
	require.NoError(t, outcome.Err)
	assert.Equal(t, domain.SessionCompleted, outcome.State)
	assert.Equal(t, "abc123", outcome.Result)
	assert.Equal(t, []string{"created"}, f.metrics.provisions)
}

func TestCreateFlowRepromptsOverTierMemory(t *testing.T) {
	t.Parallel()

	f := newConversationFixture(t, ProvisioningConfig{})

	_, err := f.service.StartCreate(context.Background(), "u1", 12, 5)
	require.NoError(t, err)

	outcome := submitAll(t, f.service, "u1", "paper", "Test", "8000")
	assert.Equal(t, domain.SessionAwaitingInput, outcome.State)
	assert.Equal(t, StepMemory, outcome.Session.StepName)
	assert.True(t, domain.IsValidation(outcome.Err))
	assert.Contains(t, outcome.Err.Error(), "6144")

	outcome = submitAll(t, f.service, "u1", "6144")
	assert.Equal(t, StepCPU, outcome.Session.StepName)
}

func TestCreateFlowFailsWithNoCapacityWithoutCreating(t *testing.T) {
	t.Parallel()

	f := newConversationFixture(t, ProvisioningConfig{NodeID: 1})

	f.app.EXPECT().ListAllocations(mockAnyContext(), 1).Return([]domain.Allocation{
		{ID: 3, Assigned: true},
	}, nil).Once()

	_, err := f.service.StartCreate(context.Background(), "u1", 12, 0)
	require.NoError(t, err)

	outcome := submitAll(t, f.service, "u1", "paper", "Test", "1024", "100", "5000")
	assert.Equal(t, domain.SessionFailed, outcome.State)
	require.ErrorIs(t, outcome.Err, domain.ErrNoCapacity)
	f.app.AssertNotCalled(t, "CreateServer", mock.Anything, mock.Anything)
}

func TestCreateFlowRequiresLinkedAccount(t *testing.T) {
	t.Parallel()

	f := newConversationFixture(t, ProvisioningConfig{})

	_, err := f.service.StartCreate(context.Background(), "u1", 0, 5)
	require.ErrorIs(t, err, domain.ErrAccountNotLinked)
}

func TestCreateFlowRejectsUnknownOfferingAtStep(t *testing.T) {
	t.Parallel()

	f := newConversationFixture(t, ProvisioningConfig{})

	_, err := f.service.StartCreate(context.Background(), "u1", 12, 0)
	require.NoError(t, err)

	outcome := submitAll(t, f.service, "u1", "bukkit")
	assert.Equal(t, StepOffering, outcome.Session.StepName)
	assert.True(t, domain.IsValidation(outcome.Err))
}

func TestManageFlowLoopsOverCommands(t *testing.T) {
	t.Parallel()

	f := newConversationFixture(t, ProvisioningConfig{})

	f.store.EXPECT().Get(mockAnyContext(), ClientKeyRef("u1")).Return("ptlc_member", nil).Once()
	f.client.EXPECT().SendPowerSignal(mockAnyContext(), domain.ClientKey("ptlc_member"), domain.InstanceIdentifier("abc123"), domain.PowerRestart).Return(nil).Times(2)

	started, err := f.service.StartManage(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, StepIdentifier, started.Session.StepName)

	submitAll(t, f.service, "u1", "abc123")
	for i := 0; i < 2; i++ {
		outcome := submitAll(t, f.service, "u1", "restart")
		require.NoError(t, outcome.Err)
		assert.Equal(t, domain.SessionAwaitingInput, outcome.State)
		assert.Equal(t, StepCommand, outcome.Session.StepName)
		assert.Contains(t, outcome.Result, "restart")
	}

	_, ok := f.service.Sessions().Active("u1")
	assert.True(t, ok)
	assert.Equal(t, []string{"restart:ok", "restart:ok"}, f.metrics.actions)
}

func TestManageFlowAsksForAndStoresKey(t *testing.T) {
	t.Parallel()

	f := newConversationFixture(t, ProvisioningConfig{})

	f.store.EXPECT().Get(mockAnyContext(), ClientKeyRef("u1")).Return("", domain.ErrCredentialNotFound).Once()
	f.store.EXPECT().Put(mockAnyContext(), ClientKeyRef("u1"), "ptlc_new").Return(nil).Once()
	f.client.EXPECT().GetServer(mockAnyContext(), domain.ClientKey("ptlc_new"), domain.InstanceIdentifier("abc123")).
		Return(domain.ServerDetails{Name: "Test", Identifier: "abc123", SFTPHost: "node.example.com", SFTPPort: 2022}, nil).Twice()

	started, err := f.service.StartManage(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, StepKey, started.Session.StepName)

	outcome := submitAll(t, f.service, "u1", "ptlc_new", "abc123", "info")
	require.NoError(t, outcome.Err)
	assert.Equal(t, "Test (abc123) sftp node.example.com:2022", outcome.Result)

	outcome = submitAll(t, f.service, "u1", "info")
	require.NoError(t, outcome.Err)
}

func TestManageFlowCancelEndsLoop(t *testing.T) {
	t.Parallel()

	f := newConversationFixture(t, ProvisioningConfig{})
	f.store.EXPECT().Get(mockAnyContext(), ClientKeyRef("u1")).Return("ptlc_member", nil).Once()

	_, err := f.service.StartManage(context.Background(), "u1")
	require.NoError(t, err)

	outcome := submitAll(t, f.service, "u1", "abc123", "exit")
	assert.Equal(t, domain.SessionCancelled, outcome.State)

	_, err = f.service.Submit(context.Background(), "u1", "start")
	require.ErrorIs(t, err, domain.ErrNoActiveSession)
}
