package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
)

// ManageService runs one lifecycle action against a server with the member's
// own client key.
type ManageService struct {
	panel   ports.PanelClientAPI
	metrics ports.Metrics
	logger  *slog.Logger
}

func NewManageService(panel ports.PanelClientAPI, metrics ports.Metrics, logger *slog.Logger) *ManageService {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ManageService{panel: panel, metrics: metrics, logger: logger}
}

// Dispatch returns a short human summary of what the panel accepted.
func (s *ManageService) Dispatch(ctx context.Context, key domain.ClientKey, identifier domain.InstanceIdentifier, action ManageAction) (string, error) {
	result, err := s.dispatch(ctx, key, identifier, action)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		s.logger.Warn("manage action failed",
			slog.String("identifier", string(identifier)),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
	}
	s.metrics.ObserveManageAction(string(action), outcome)

	return result, err
}

func (s *ManageService) dispatch(ctx context.Context, key domain.ClientKey, identifier domain.InstanceIdentifier, action ManageAction) (string, error) {
	switch action {
	case ManageStart, ManageStop, ManageRestart, ManageKill:
		signal, err := domain.ParsePowerSignal(string(action))
		if err != nil {
			return "", err
		}
		if err := s.panel.SendPowerSignal(ctx, key, identifier, signal); err != nil {
			return "", fmt.Errorf("%s %s: %w", action, identifier, err)
		}
		return fmt.Sprintf("sent %s to %s", action, identifier), nil
	case ManageReinstall:
		if err := s.panel.Reinstall(ctx, key, identifier); err != nil {
			return "", fmt.Errorf("reinstall %s: %w", identifier, err)
		}
		return fmt.Sprintf("reinstall of %s started", identifier), nil
	case ManageInfo:
		details, err := s.panel.GetServer(ctx, key, identifier)
		if err != nil {
			return "", fmt.Errorf("info %s: %w", identifier, err)
		}
		return formatDetails(details), nil
	default:
		return "", domain.NewValidationError("command", "must be one of %s", strings.Join(ManageActions(), ", "))
	}
}

func formatDetails(details domain.ServerDetails) string {
	summary := fmt.Sprintf("%s (%s)", details.Name, details.Identifier)
	if details.SFTPHost != "" {
		summary += fmt.Sprintf(" sftp %s:%d", details.SFTPHost, details.SFTPPort)
	}
	return summary
}
