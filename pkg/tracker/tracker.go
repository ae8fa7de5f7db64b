package tracker

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/investrobot/ordertracker/pkg/types"
)

var log = logrus.WithField("component", "tracker")

var (
	ErrEmptyInstrument = errors.New("instrument is required")
	ErrInvalidSide     = errors.New("invalid order side")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidPrice    = errors.New("price must be positive")
)

// OrderTracker keeps a snapshot of the account orders and manages the
// orders of one instrument.
type OrderTracker struct {
	Instrument string

	service types.OrderService
	sink    EventSink
	now     func() time.Time

	mu    sync.RWMutex
	items []types.Order
}

type Option func(t *OrderTracker)

// WithEventSink replaces the default log sink.
func WithEventSink(sink EventSink) Option {
	return func(t *OrderTracker) {
		t.sink = sink
	}
}

func New(instrument string, service types.OrderService, options ...Option) (*OrderTracker, error) {
	if instrument == "" {
		return nil, ErrEmptyInstrument
	}

	t := &OrderTracker{
		Instrument: instrument,
		service:    service,
		sink:       NewLogSink(log.WithField("instrument", instrument)),
		now:        time.Now,
	}

	for _, o := range options {
		o(t)
	}

	return t, nil
}

// Orders returns a copy of the last loaded snapshot.
func (t *OrderTracker) Orders() []types.Order {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]types.Order(nil), t.items...)
}

// TrackedOrders returns the snapshot orders of the tracker's instrument.
func (t *OrderTracker) TrackedOrders() []types.Order {
	return types.FilterOrdersByInstrument(t.Orders(), t.Instrument)
}

// Refresh loads the account orders and replaces the snapshot.
// The snapshot is left untouched when the query fails.
func (t *OrderTracker) Refresh(ctx context.Context) error {
	orders, err := t.service.QueryOrders(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.items = orders
	t.mu.Unlock()

	t.emit(Event{
		Type:    EventOrdersLoaded,
		Count:   len(orders),
		Message: fmt.Sprintf("orders loaded: %d", len(orders)),
	})

	for i := range orders {
		order := orders[i]
		t.emit(Event{
			Type:    EventOrderListed,
			Order:   &order,
			Message: formatOrderLine(order),
		})
	}

	return nil
}

// SubmitLimitOrder submits a limit order for the tracker's instrument with a
// fresh idempotency key. The snapshot is not updated, call Refresh to see the
// new order.
func (t *OrderTracker) SubmitLimitOrder(ctx context.Context, side types.SideType, quantity int64, price types.Quotation) (*types.OrderConfirmation, error) {
	if !side.Valid() {
		return nil, errors.Wrapf(ErrInvalidSide, "side %q", side)
	}

	if quantity <= 0 {
		return nil, errors.Wrapf(ErrInvalidQuantity, "quantity %d", quantity)
	}

	if !price.IsPositive() {
		return nil, errors.Wrapf(ErrInvalidPrice, "price %s", price)
	}

	submitOrder := types.SubmitOrder{
		ClientOrderID: uuid.NewString(),
		Instrument:    t.Instrument,
		Side:          side,
		Type:          types.OrderTypeLimit,
		Quantity:      quantity,
		Price:         price,
	}

	confirmation, err := t.service.SubmitOrder(ctx, submitOrder)
	if err != nil {
		return nil, err
	}

	t.emit(Event{
		Type:         EventOrderSubmitted,
		Submit:       &submitOrder,
		Confirmation: confirmation,
		Message: fmt.Sprintf("created %s order: lots %d, price %s",
			side.ActionLabel(), quantity, price.String()),
	})

	return confirmation, nil
}

// CancelTrackedOrders cancels every snapshot order of the tracker's
// instrument. The requests are issued concurrently and all of them are
// awaited; the returned report holds the outcome of each request and the
// error combines all the failures.
func (t *OrderTracker) CancelTrackedOrders(ctx context.Context) (*CancelReport, error) {
	orders := t.TrackedOrders()
	report := &CancelReport{
		Instrument: t.Instrument,
		Results:    make([]CancelResult, len(orders)),
	}

	for i := range orders {
		order := orders[i]
		t.emit(Event{
			Type:  EventOrderCancelling,
			Order: &order,
			Message: fmt.Sprintf("cancelling previous order %s, price %s",
				order.OrderID, order.InitialSecurityPrice.Decimal().String()),
		})
	}

	var wg sync.WaitGroup
	for i, order := range orders {
		wg.Add(1)
		go func(i int, order types.Order) {
			defer wg.Done()
			err := t.service.CancelOrder(ctx, order.OrderID)
			report.Results[i] = CancelResult{Order: order, Error: err}
		}(i, order)
	}
	wg.Wait()

	for i := range report.Results {
		result := report.Results[i]
		if result.Error != nil {
			t.emit(Event{
				Type:    EventOrderCancelFailed,
				Order:   &result.Order,
				Error:   result.Error,
				Message: fmt.Sprintf("can not cancel order %s: %v", result.Order.OrderID, result.Error),
			})
			continue
		}

		t.emit(Event{
			Type:    EventOrderCancelled,
			Order:   &result.Order,
			Message: fmt.Sprintf("order %s cancelled", result.Order.OrderID),
		})
	}

	return report, report.Err()
}

// Reconcile reloads the snapshot and cancels the tracked orders.
// The cancellation step is skipped when the reload fails.
func (t *OrderTracker) Reconcile(ctx context.Context) (*CancelReport, error) {
	if err := t.Refresh(ctx); err != nil {
		return nil, err
	}

	return t.CancelTrackedOrders(ctx)
}

func (t *OrderTracker) emit(e Event) {
	e.Instrument = t.Instrument
	if e.Time.IsZero() {
		e.Time = t.now()
	}

	if t.sink != nil {
		t.sink.Emit(e)
	}
}

func formatOrderLine(o types.Order) string {
	return strings.Join([]string{
		strings.Repeat(" ", 4),
		o.Status.Label(),
		o.Direction.Label(),
		strconv.FormatInt(o.LotsRequested, 10),
		o.InitialOrderPrice.String(),
		o.Instrument,
	}, " ")
}
