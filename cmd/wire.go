package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/viper"

	loggingadapter "github.com/bnema/panelbot/internal/adapters/logging"
	metricsadapter "github.com/bnema/panelbot/internal/adapters/metrics"
	paneladapter "github.com/bnema/panelbot/internal/adapters/panel"
	tomlrepo "github.com/bnema/panelbot/internal/adapters/repo/toml"
	chainstore "github.com/bnema/panelbot/internal/adapters/secrets/chain"
	"github.com/bnema/panelbot/internal/application"
	"github.com/bnema/panelbot/internal/config"
	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
)

// configPathEnv overrides the config file location.
const configPathEnv = "PANELBOT_CONFIG"

type app struct {
	cfg           *config.Config
	members       *application.MemberService
	credentials   *application.CredentialService
	provisioning  *application.ProvisioningService
	manage        *application.ManageService
	conversations *application.ConversationService
	metrics       *metricsadapter.Recorder
	logger        *slog.Logger
	logCloser     io.Closer
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v, os.Getenv(configPathEnv))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := loggingadapter.New(os.Stderr, cfg.Log.Level)
	var logCloser io.Closer
	if cfg.Log.File != "" {
		logger, logCloser, err = loggingadapter.NewFile(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("wire logger: %w", err)
		}
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("wire offering catalog: %w", err)
	}
	tiers, err := cfg.TierTable()
	if err != nil {
		return nil, fmt.Errorf("wire tier table: %w", err)
	}

	recorder := metricsadapter.NewRecorder()
	httpClient := recorder.InstrumentClient(&http.Client{})
	api := paneladapter.API{BaseURL: cfg.Panel.URL}
	timeouts := paneladapter.Timeouts{Request: cfg.RequestTimeout(), Create: cfg.CreateTimeout()}

	applicationAPI, err := paneladapter.NewApplicationClient(api, domain.ApplicationKey(cfg.Panel.ApplicationKey), httpClient, timeouts)
	if err != nil {
		return nil, fmt.Errorf("wire panel application client: %w", err)
	}
	clientAPI, err := paneladapter.NewClientAPI(api, httpClient, timeouts)
	if err != nil {
		return nil, fmt.Errorf("wire panel client api: %w", err)
	}

	// The repository reads members.path from the same viper instance.
	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire member repository: %w", err)
	}

	secretStore, err := chainstore.ForBackend(cfg.Secrets.Backend, cfg.Secrets.Dir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	clock := ports.SystemClock{}
	picker := application.NewAllocationPicker(applicationAPI, logger)
	provisioning := application.NewProvisioningService(applicationAPI, picker, catalog, tiers, application.ProvisioningConfig{
		NodeID:            cfg.Panel.NodeID,
		DefaultAllocation: domain.AllocationID(cfg.Panel.DefaultAllocation),
		Environment:       cfg.DefaultEnvironment(),
	}, clock, recorder, logger)
	manage := application.NewManageService(clientAPI, recorder, logger)
	credentials := application.NewCredentialService(secretStore)
	sessions := application.NewSessionManager(clock, application.SessionConfig{
		Timeout:     cfg.StepTimeout(),
		CancelWords: cfg.Sessions.CancelWords,
	}, recorder, logger)

	return &app{
		cfg:           cfg,
		members:       application.NewMemberService(repo, applicationAPI, tiers, cfg.BootstrapAdmins(), logger),
		credentials:   credentials,
		provisioning:  provisioning,
		manage:        manage,
		conversations: application.NewConversationService(sessions, provisioning, manage, credentials),
		metrics:       recorder,
		logger:        logger,
		logCloser:     logCloser,
	}, nil
}

func (a *app) close() error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}
