// Package metrics holds the Prometheus instruments of the scanning flow.
// Every method is nil-safe so components can run without metrics.
package metrics

import (
	"qrscanner/pkg/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Metrics groups the scan instruments.
type Metrics struct {
	// DecodeDuration is the latency of a single decode attempt per channel.
	DecodeDuration *prometheus.HistogramVec
	// Outcomes counts decode outcomes per channel and kind.
	Outcomes *prometheus.CounterVec
	// Validations counts whitelist decisions per channel.
	Validations *prometheus.CounterVec
	// SessionsEnded counts finished capture sessions per reason.
	SessionsEnded *prometheus.CounterVec
	// ActiveSessions is 1 while a capture session runs.
	ActiveSessions prometheus.Gauge
}

// New registers the scan instruments on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DecodeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "qrscanner_decode_duration_seconds",
			Help:    "Duration of a single QR decode attempt",
			Buckets: DefaultBuckets,
		}, []string{"channel"}),
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qrscanner_decode_outcomes_total",
			Help: "Decode outcomes by channel and kind",
		}, []string{"channel", "outcome"}),
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qrscanner_validations_total",
			Help: "Domain whitelist decisions by channel",
		}, []string{"channel", "trusted"}),
		SessionsEnded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qrscanner_sessions_ended_total",
			Help: "Capture sessions ended by reason",
		}, []string{"reason"}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "qrscanner_active_sessions",
			Help: "Number of running capture sessions (0 or 1)",
		}),
	}
}

// ObserveDecode records the duration of one decode attempt.
func (m *Metrics) ObserveDecode(channel domain.Channel, d time.Duration) {
	if m != nil {
		m.DecodeDuration.WithLabelValues(string(channel)).Observe(d.Seconds())
	}
}

// IncOutcome counts one decode outcome.
func (m *Metrics) IncOutcome(channel domain.Channel, kind domain.OutcomeKind) {
	if m != nil {
		m.Outcomes.WithLabelValues(string(channel), kind.String()).Inc()
	}
}

// IncValidation counts one whitelist decision.
func (m *Metrics) IncValidation(channel domain.Channel, trusted bool) {
	if m != nil {
		label := "false"
		if trusted {
			label = "true"
		}
		m.Validations.WithLabelValues(string(channel), label).Inc()
	}
}

// SessionStarted marks a capture session as running.
func (m *Metrics) SessionStarted() {
	if m != nil {
		m.ActiveSessions.Set(1)
	}
}

// SessionEnded marks the capture session as finished for reason.
func (m *Metrics) SessionEnded(reason string) {
	if m != nil {
		m.ActiveSessions.Set(0)
		m.SessionsEnded.WithLabelValues(reason).Inc()
	}
}
