package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/investrobot/ordertracker/pkg/tracker"
)

var TrackedOrdersMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "ordertracker_tracked_orders",
		Help: "number of orders in the last loaded snapshot",
	}, []string{"instrument"})

var SubmittedOrdersMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ordertracker_submitted_orders_total",
		Help: "number of limit orders accepted by the broker",
	}, []string{"instrument", "side"})

var CancelledOrdersMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ordertracker_cancel_requests_total",
		Help: "number of cancel requests by result",
	}, []string{"instrument", "result"})

func init() {
	prometheus.MustRegister(
		TrackedOrdersMetrics,
		SubmittedOrdersMetrics,
		CancelledOrdersMetrics,
	)
}

// Sink updates the order metrics from the tracker events.
type Sink struct{}

func (Sink) Emit(e tracker.Event) {
	switch e.Type {
	case tracker.EventOrdersLoaded:
		TrackedOrdersMetrics.WithLabelValues(e.Instrument).Set(float64(e.Count))

	case tracker.EventOrderSubmitted:
		side := ""
		if e.Submit != nil {
			side = string(e.Submit.Side)
		}
		SubmittedOrdersMetrics.WithLabelValues(e.Instrument, side).Inc()

	case tracker.EventOrderCancelled:
		CancelledOrdersMetrics.WithLabelValues(e.Instrument, "ok").Inc()

	case tracker.EventOrderCancelFailed:
		CancelledOrdersMetrics.WithLabelValues(e.Instrument, "error").Inc()
	}
}
