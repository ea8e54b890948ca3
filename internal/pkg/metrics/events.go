package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EventMetrics records how widget events are processed.
type EventMetrics struct {
	duration *prometheus.HistogramVec
	handled  *prometheus.CounterVec
	failed   *prometheus.CounterVec
	orders   prometheus.Gauge
}

// NewEventMetrics registers the event metrics on the provided registerer.
// A nil registerer yields a recorder that drops everything.
func NewEventMetrics(reg prometheus.Registerer) *EventMetrics {
	if reg == nil {
		return &EventMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tracker_event_duration_seconds",
		Help:    "Duration of widget event processing in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"type"})
	handled := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_events_handled_total",
		Help: "Widget events processed without error.",
	}, []string{"type"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_events_failed_total",
		Help: "Widget events that returned an error.",
	}, []string{"type"})
	orders := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tracker_orders",
		Help: "Orders currently in the store.",
	})
	reg.MustRegister(duration, handled, failed, orders)
	return &EventMetrics{
		duration: duration,
		handled:  handled,
		failed:   failed,
		orders:   orders,
	}
}

// Observe records one processed event of the given type.
func (m *EventMetrics) Observe(eventType string, took time.Duration, err error) {
	if m == nil || m.duration == nil {
		return
	}
	label := normalizeLabel(eventType)
	m.duration.WithLabelValues(label).Observe(took.Seconds())
	if err != nil {
		m.failed.WithLabelValues(label).Inc()
		return
	}
	m.handled.WithLabelValues(label).Inc()
}

// SetOrders records the current store size.
func (m *EventMetrics) SetOrders(n int) {
	if m == nil || m.orders == nil {
		return
	}
	m.orders.Set(float64(n))
}

func normalizeLabel(eventType string) string {
	if eventType == "" {
		return "unknown"
	}
	return eventType
}
