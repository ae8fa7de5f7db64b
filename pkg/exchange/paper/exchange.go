package paper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/investrobot/ordertracker/pkg/types"
)

var log = logrus.WithField("exchange", "paper")

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotCancelable = errors.New("order can not be cancelled")
)

// Exchange is an in-memory broker account. Orders stay NEW until they are
// filled with Fill or cancelled.
type Exchange struct {
	Currency string

	mu      sync.Mutex
	seq     uint64
	orders  []*types.Order
	clients map[string]*types.OrderConfirmation
}

func New(currency string) *Exchange {
	return &Exchange{
		Currency: currency,
		clients:  make(map[string]*types.OrderConfirmation),
	}
}

// QueryOrders returns the active orders in submission order.
func (e *Exchange) QueryOrders(ctx context.Context) ([]types.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var orders []types.Order
	for _, o := range e.orders {
		if !o.Status.Closed() {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

// SubmitOrder accepts limit orders. Submitting the same client order id twice
// returns the first confirmation without creating another order.
func (e *Exchange) SubmitOrder(ctx context.Context, submitOrder types.SubmitOrder) (*types.OrderConfirmation, error) {
	if submitOrder.Type != types.OrderTypeLimit {
		return nil, fmt.Errorf("unsupported order type: %s", submitOrder.Type)
	}

	if submitOrder.Quantity <= 0 || !submitOrder.Price.IsPositive() {
		return nil, fmt.Errorf("invalid order: %s", submitOrder)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if submitOrder.ClientOrderID != "" {
		if confirmation, ok := e.clients[submitOrder.ClientOrderID]; ok {
			log.Warnf("duplicated client order id %s, returning order %s", submitOrder.ClientOrderID, confirmation.OrderID)
			c := *confirmation
			return &c, nil
		}
	}

	e.seq++
	orderValue := submitOrder.Price.Decimal().Mul(decimal.NewFromInt(submitOrder.Quantity))
	order := &types.Order{
		OrderID:              fmt.Sprintf("paper-%d", e.seq),
		Instrument:           submitOrder.Instrument,
		Direction:            submitOrder.Side,
		Type:                 submitOrder.Type,
		Status:               types.OrderStatusNew,
		LotsRequested:        submitOrder.Quantity,
		InitialOrderPrice:    types.NewMoneyValue(e.Currency, types.NewQuotationFromDecimal(orderValue)),
		InitialSecurityPrice: types.NewMoneyValue(e.Currency, submitOrder.Price),
		CreationTime:         time.Now(),
	}
	e.orders = append(e.orders, order)

	confirmation := &types.OrderConfirmation{
		OrderID:           order.OrderID,
		ClientOrderID:     submitOrder.ClientOrderID,
		Status:            order.Status,
		LotsRequested:     order.LotsRequested,
		InitialOrderPrice: order.InitialOrderPrice,
	}

	if submitOrder.ClientOrderID != "" {
		e.clients[submitOrder.ClientOrderID] = confirmation
	}

	log.Infof("order accepted: %s", order)
	c := *confirmation
	return &c, nil
}

func (e *Exchange) CancelOrder(ctx context.Context, orderID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	order, ok := e.find(orderID)
	if !ok {
		return errors.Wrapf(ErrOrderNotFound, "order %s", orderID)
	}

	if order.Status.Closed() {
		return errors.Wrapf(ErrOrderNotCancelable, "order %s is %s", orderID, order.Status)
	}

	order.Status = types.OrderStatusCancelled
	return nil
}

// Fill executes the given lots of an active order.
func (e *Exchange) Fill(orderID string, lots int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	order, ok := e.find(orderID)
	if !ok {
		return errors.Wrapf(ErrOrderNotFound, "order %s", orderID)
	}

	if order.Status.Closed() {
		return fmt.Errorf("order %s is %s", orderID, order.Status)
	}

	order.LotsExecuted += lots
	if order.LotsExecuted >= order.LotsRequested {
		order.LotsExecuted = order.LotsRequested
		order.Status = types.OrderStatusFilled
	} else {
		order.Status = types.OrderStatusPartiallyFilled
	}

	return nil
}

func (e *Exchange) find(orderID string) (*types.Order, bool) {
	for _, o := range e.orders {
		if o.OrderID == orderID {
			return o, true
		}
	}
	return nil, false
}
