package investapi

import (
	"context"
)

type CancelOrderRequest struct {
	client *RestClient

	accountID string
	orderID   string
}

func (c *RestClient) NewCancelOrderRequest() *CancelOrderRequest {
	return &CancelOrderRequest{client: c}
}

func (r *CancelOrderRequest) AccountID(accountID string) *CancelOrderRequest {
	r.accountID = accountID
	return r
}

func (r *CancelOrderRequest) OrderID(orderID string) *CancelOrderRequest {
	r.orderID = orderID
	return r
}

func (r *CancelOrderRequest) GetParameters() map[string]interface{} {
	return map[string]interface{}{
		"accountId": r.accountID,
		"orderId":   r.orderID,
	}
}

func (r *CancelOrderRequest) Do(ctx context.Context) (*CancelOrderResponse, error) {
	var resp CancelOrderResponse
	if err := r.client.call(ctx, "CancelOrder", r.GetParameters(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
