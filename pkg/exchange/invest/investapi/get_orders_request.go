package investapi

import (
	"context"
)

type GetOrdersRequest struct {
	client *RestClient

	accountID string
}

func (c *RestClient) NewGetOrdersRequest() *GetOrdersRequest {
	return &GetOrdersRequest{client: c}
}

func (r *GetOrdersRequest) AccountID(accountID string) *GetOrdersRequest {
	r.accountID = accountID
	return r
}

func (r *GetOrdersRequest) GetParameters() map[string]interface{} {
	return map[string]interface{}{
		"accountId": r.accountID,
	}
}

func (r *GetOrdersRequest) Do(ctx context.Context) ([]OrderState, error) {
	var resp GetOrdersResponse
	if err := r.client.call(ctx, "GetOrders", r.GetParameters(), &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}
