// Package metrics holds the Prometheus collectors of the bot. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "midnight"

// Cycle outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Metrics struct {
	cycles          *prometheus.CounterVec
	cycleDuration   *prometheus.HistogramVec
	fetchFailures   *prometheus.CounterVec
	notifications   *prometheus.CounterVec
	tokenRefreshes  *prometheus.CounterVec
	pendingControls prometheus.Gauge
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		cycles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_cycles_total",
			Help:      "Reconciliation cycles by feed and outcome",
		}, []string{"feed", "outcome"}),

		cycleDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_cycle_duration_seconds",
			Help:      "Duration of reconciliation cycles",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}, []string{"feed"}),

		fetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_failures_total",
			Help:      "Remote entities dropped from a snapshot because their fetch failed",
		}, []string{"kind"}),

		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Messages sent to subscribed channels",
		}, []string{"kind", "outcome"}),

		tokenRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_refreshes_total",
			Help:      "Client-credentials exchanges against the osu! API",
		}, []string{"outcome"}),

		pendingControls: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_controls",
			Help:      "Messages whose interactive controls are still listened to",
		}),
	}
}

func (m *Metrics) ObserveCycle(feed string, err error, took time.Duration) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.cycles.WithLabelValues(feed, outcome).Inc()
	m.cycleDuration.WithLabelValues(feed).Observe(took.Seconds())
}

func (m *Metrics) FetchFailed(kind string) {
	if m == nil {
		return
	}
	m.fetchFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) NotificationSent(kind string, err error) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.notifications.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) TokenRefreshed(err error) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.tokenRefreshes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ControlsPending(delta float64) {
	if m == nil {
		return
	}
	m.pendingControls.Add(delta)
}
