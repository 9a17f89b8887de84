// Package metrics exports provisioning, session and panel call metrics to
// Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
)

const namespace = "panelbot"

var _ ports.Metrics = (*Recorder)(nil)

type Recorder struct {
	registry *prometheus.Registry

	provisionTotal    *prometheus.CounterVec
	provisionDuration *prometheus.HistogramVec
	sessionsEnded     *prometheus.CounterVec
	manageActions     *prometheus.CounterVec
	panelRequests     *prometheus.CounterVec
	panelDuration     *prometheus.HistogramVec
}

// NewRecorder registers every collector on a private registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		provisionTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "provisioning",
				Name:      "requests_total",
				Help:      "Provisioning attempts by outcome",
			},
			[]string{"outcome"},
		),
		provisionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "provisioning",
				Name:      "duration_seconds",
				Help:      "Duration of provisioning attempts in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~100s
			},
			[]string{"outcome"},
		),
		sessionsEnded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sessions",
				Name:      "ended_total",
				Help:      "Conversational sessions by flow and final state",
			},
			[]string{"flow", "state"},
		),
		manageActions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "manage",
				Name:      "actions_total",
				Help:      "Manage actions by action and outcome",
			},
			[]string{"action", "outcome"},
		),
		panelRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "panel",
				Name:      "requests_total",
				Help:      "Panel HTTP requests by method and status code",
			},
			[]string{"code", "method"},
		),
		panelDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "panel",
				Name:      "request_duration_seconds",
				Help:      "Panel HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"code", "method"},
		),
	}

	r.registry.MustRegister(
		r.provisionTotal,
		r.provisionDuration,
		r.sessionsEnded,
		r.manageActions,
		r.panelRequests,
		r.panelDuration,
	)
	return r
}

func (r *Recorder) ObserveProvision(outcome string, elapsed time.Duration) {
	r.provisionTotal.WithLabelValues(outcome).Inc()
	r.provisionDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveSessionEnd(kind domain.SessionKind, state domain.SessionState) {
	r.sessionsEnded.WithLabelValues(string(kind), string(state)).Inc()
}

func (r *Recorder) ObserveManageAction(action string, outcome string) {
	r.manageActions.WithLabelValues(action, outcome).Inc()
}

// InstrumentClient returns a copy of client whose transport records panel
// request counts and latency.
func (r *Recorder) InstrumentClient(client *http.Client) *http.Client {
	if client == nil {
		client = &http.Client{}
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	instrumented := *client
	instrumented.Transport = promhttp.InstrumentRoundTripperCounter(r.panelRequests,
		promhttp.InstrumentRoundTripperDuration(r.panelDuration, base),
	)
	return &instrumented
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
