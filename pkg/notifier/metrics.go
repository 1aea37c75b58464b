package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts dispatch outcomes. All methods are nil-safe so the
// dispatcher works without metrics wired.
type Metrics struct {
	EventsHandled    *prometheus.CounterVec
	DeliveryFailures *prometheus.CounterVec
}

// NewMetrics registers the dispatcher counters with the default registerer.
// Call it once per process.
func NewMetrics() *Metrics {
	return &Metrics{
		EventsHandled: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pushrelay_events_handled_total",
			Help: "Change events handled, by entity kind and outcome",
		}, []string{"kind", "outcome"}),
		DeliveryFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pushrelay_delivery_failures_total",
			Help: "Push delivery attempts rejected by the transport, by entity kind",
		}, []string{"kind"}),
	}
}

func (m *Metrics) ObserveOutcome(kind EntityKind, outcome Outcome) {
	if m == nil {
		return
	}
	m.EventsHandled.WithLabelValues(string(kind), string(outcome)).Inc()
}

func (m *Metrics) ObserveDeliveryFailure(kind EntityKind) {
	if m == nil {
		return
	}
	m.DeliveryFailures.WithLabelValues(string(kind)).Inc()
}
