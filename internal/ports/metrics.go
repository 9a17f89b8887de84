package ports

import (
	"time"

	"github.com/bnema/panelbot/internal/domain"
)

type Metrics interface {
	ObserveProvision(outcome string, elapsed time.Duration)
	ObserveSessionEnd(kind domain.SessionKind, state domain.SessionState)
	ObserveManageAction(action string, outcome string)
}

type NopMetrics struct{}

func (NopMetrics) ObserveProvision(string, time.Duration) {}
func (NopMetrics) ObserveSessionEnd(domain.SessionKind, domain.SessionState) {}
func (NopMetrics) ObserveManageAction(string, string) {}
