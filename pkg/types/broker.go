package types

import "context"

//go:generate mockgen -destination=mocks/mock_order_service.go -package=mocks . OrderService

// OrderService is the order API of a brokerage account.
type OrderService interface {
	// QueryOrders returns the active orders of the account
	QueryOrders(ctx context.Context) ([]Order, error)

	SubmitOrder(ctx context.Context, order SubmitOrder) (*OrderConfirmation, error)

	CancelOrder(ctx context.Context, orderID string) error
}
