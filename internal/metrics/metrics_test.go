package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveCycle("mapfeed", nil, time.Second)
	m.ObserveCycle("mapfeed", assert.AnError, time.Second)
	m.ObserveCycle("mapfeed", nil, time.Second)
	m.FetchFailed("beatmapset")
	m.NotificationSent("groups", nil)
	m.TokenRefreshed(assert.AnError)
	m.ControlsPending(2)
	m.ControlsPending(-1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cycles.WithLabelValues("mapfeed", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cycles.WithLabelValues("mapfeed", OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetchFailures.WithLabelValues("beatmapset")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("groups", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tokenRefreshes.WithLabelValues(OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pendingControls))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveCycle("groups", nil, time.Second)
		m.FetchFailed("beatmapset")
		m.NotificationSent("mapfeed", nil)
		m.TokenRefreshed(nil)
		m.ControlsPending(1)
	})
}
