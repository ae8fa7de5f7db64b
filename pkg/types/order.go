package types

import (
	"fmt"
	"time"
)

// OrderType define order type
type OrderType string

const (
	OrderTypeLimit  OrderType = "LIMIT"
	OrderTypeMarket OrderType = "MARKET"
)

// OrderStatus is the execution report status reported by the broker.
// Values outside the known set are kept as-is and treated as unknown.
type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "NEW"
	OrderStatusFilled          OrderStatus = "FILLED"
	OrderStatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	OrderStatusRejected        OrderStatus = "REJECTED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
)

// Label returns the human-readable status used in order listings.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusNew:
		return "New"
	case OrderStatusFilled:
		return "Filled"
	case OrderStatusPartiallyFilled:
		return "Partially filled"
	case OrderStatusRejected:
		return "Rejected"
	case OrderStatusCancelled:
		return "Cancelled by user"
	}

	return fmt.Sprintf("Unknown status %s", string(s))
}

// Closed returns true if the order can not change anymore.
func (s OrderStatus) Closed() bool {
	switch s {
	case OrderStatusFilled, OrderStatusRejected, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is an order snapshot as reported by the broker.
type Order struct {
	OrderID    string      `json:"orderID"`
	Instrument string      `json:"instrument"`
	Direction  SideType    `json:"direction"`
	Type       OrderType   `json:"orderType"`
	Status     OrderStatus `json:"status"`

	LotsRequested int64 `json:"lotsRequested"`
	LotsExecuted  int64 `json:"lotsExecuted"`

	// InitialOrderPrice is the full order value at submission time,
	// InitialSecurityPrice is the price of one instrument unit.
	InitialOrderPrice    MoneyValue `json:"initialOrderPrice"`
	InitialSecurityPrice MoneyValue `json:"initialSecurityPrice"`

	CreationTime time.Time `json:"creationTime"`
}

func (o Order) String() string {
	return fmt.Sprintf("ORDER %s %s %s %d @ %s -> %s",
		o.OrderID,
		o.Instrument,
		o.Direction,
		o.LotsRequested,
		o.InitialSecurityPrice.String(),
		o.Status)
}

// SubmitOrder is the request for creating a new order.
type SubmitOrder struct {
	// ClientOrderID is the idempotency key of the submission
	ClientOrderID string `json:"clientOrderID"`

	Instrument string    `json:"instrument"`
	Side       SideType  `json:"side"`
	Type       OrderType `json:"orderType"`
	Quantity   int64     `json:"quantity"`
	Price      Quotation `json:"price"`
}

func (o SubmitOrder) String() string {
	return fmt.Sprintf("SUBMIT_ORDER %s %s %s %d @ %s (%s)",
		o.Type, o.Instrument, o.Side, o.Quantity, o.Price.String(), o.ClientOrderID)
}

// OrderConfirmation is the broker response for an accepted submission.
type OrderConfirmation struct {
	OrderID       string      `json:"orderID"`
	ClientOrderID string      `json:"clientOrderID"`
	Status        OrderStatus `json:"status"`
	LotsRequested int64       `json:"lotsRequested"`
	LotsExecuted  int64       `json:"lotsExecuted"`

	InitialOrderPrice MoneyValue `json:"initialOrderPrice"`

	Message string `json:"message,omitempty"`
}
