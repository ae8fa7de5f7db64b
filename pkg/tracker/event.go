package tracker

import (
	"time"

	"github.com/investrobot/ordertracker/pkg/types"
)

type EventType string

const (
	EventOrdersLoaded      EventType = "orders_loaded"
	EventOrderListed       EventType = "order_listed"
	EventOrderSubmitted    EventType = "order_submitted"
	EventOrderCancelling   EventType = "order_cancelling"
	EventOrderCancelled    EventType = "order_cancelled"
	EventOrderCancelFailed EventType = "order_cancel_failed"
)

// Event is a status record emitted by the tracker. Message is the
// human-readable rendering, the other fields carry the same data for
// machine consumers.
type Event struct {
	Type       EventType
	Time       time.Time
	Instrument string
	Message    string

	// Count is set on EventOrdersLoaded
	Count int

	// Order is set on the per-order events
	Order *types.Order

	// Submit and Confirmation are set on EventOrderSubmitted
	Submit       *types.SubmitOrder
	Confirmation *types.OrderConfirmation

	// Error is set on EventOrderCancelFailed
	Error error
}

// EventSink receives the tracker events. The tracker always calls Emit from
// the goroutine that invoked the tracker operation.
type EventSink interface {
	Emit(e Event)
}

type EventSinkFunc func(e Event)

func (f EventSinkFunc) Emit(e Event) {
	f(e)
}

// MultiSink fans out events to all of its sinks in order.
type MultiSink []EventSink

func (sinks MultiSink) Emit(e Event) {
	for _, sink := range sinks {
		sink.Emit(e)
	}
}
