package investapi

import (
	"context"
	"errors"
)

type PostOrderRequest struct {
	client *RestClient

	figi      string
	quantity  int64
	price     *Quotation
	direction OrderDirection
	accountID string
	orderType OrderType
	orderID   string
}

func (c *RestClient) NewPostOrderRequest() *PostOrderRequest {
	return &PostOrderRequest{client: c, orderType: OrderTypeLimit}
}

func (r *PostOrderRequest) Figi(figi string) *PostOrderRequest {
	r.figi = figi
	return r
}

func (r *PostOrderRequest) Quantity(quantity int64) *PostOrderRequest {
	r.quantity = quantity
	return r
}

func (r *PostOrderRequest) Price(price Quotation) *PostOrderRequest {
	r.price = &price
	return r
}

func (r *PostOrderRequest) Direction(direction OrderDirection) *PostOrderRequest {
	r.direction = direction
	return r
}

func (r *PostOrderRequest) AccountID(accountID string) *PostOrderRequest {
	r.accountID = accountID
	return r
}

func (r *PostOrderRequest) OrderType(orderType OrderType) *PostOrderRequest {
	r.orderType = orderType
	return r
}

// OrderID sets the idempotency key of the order
func (r *PostOrderRequest) OrderID(orderID string) *PostOrderRequest {
	r.orderID = orderID
	return r
}

func (r *PostOrderRequest) GetParameters() (map[string]interface{}, error) {
	if r.figi == "" {
		return nil, errors.New("figi is required")
	}

	if r.orderID == "" {
		return nil, errors.New("orderId is required")
	}

	params := map[string]interface{}{
		"figi":      r.figi,
		"quantity":  Int64String(r.quantity),
		"direction": r.direction,
		"accountId": r.accountID,
		"orderType": r.orderType,
		"orderId":   r.orderID,
	}

	if r.price != nil {
		params["price"] = r.price
	}

	return params, nil
}

func (r *PostOrderRequest) Do(ctx context.Context) (*PostOrderResponse, error) {
	params, err := r.GetParameters()
	if err != nil {
		return nil, err
	}

	var resp PostOrderResponse
	if err := r.client.call(ctx, "PostOrder", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
