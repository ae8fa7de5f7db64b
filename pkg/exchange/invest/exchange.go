package invest

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/investrobot/ordertracker/pkg/exchange/invest/investapi"
	"github.com/investrobot/ordertracker/pkg/types"
)

var log = logrus.WithField("exchange", "invest")

// Exchange implements types.OrderService for one brokerage account.
type Exchange struct {
	client    *investapi.RestClient
	accountID string
}

func New(client *investapi.RestClient, accountID string) (*Exchange, error) {
	if accountID == "" {
		return nil, errors.New("invest: account id is required")
	}

	return &Exchange{client: client, accountID: accountID}, nil
}

func (e *Exchange) QueryOrders(ctx context.Context) ([]types.Order, error) {
	orders, err := e.client.NewGetOrdersRequest().AccountID(e.accountID).Do(ctx)
	if err != nil {
		return nil, err
	}

	return toGlobalOrders(orders), nil
}

func (e *Exchange) SubmitOrder(ctx context.Context, order types.SubmitOrder) (*types.OrderConfirmation, error) {
	req := e.client.NewPostOrderRequest().
		AccountID(e.accountID).
		Figi(order.Instrument).
		Quantity(order.Quantity).
		Direction(toLocalSide(order.Side)).
		OrderType(toLocalOrderType(order.Type)).
		OrderID(order.ClientOrderID)

	if order.Type == types.OrderTypeLimit {
		req.Price(toLocalQuotation(order.Price))
	}

	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	log.Debugf("order submitted: %+v", resp)
	return toGlobalConfirmation(resp, order.ClientOrderID), nil
}

func (e *Exchange) CancelOrder(ctx context.Context, orderID string) error {
	_, err := e.client.NewCancelOrderRequest().AccountID(e.accountID).OrderID(orderID).Do(ctx)
	return err
}
