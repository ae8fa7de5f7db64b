package investapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Path          string
	Authorization string
	Body          map[string]interface{}
}

func newTestServer(t *testing.T, status int, response string) (*httptest.Server, *capturedRequest) {
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Path = r.URL.Path
		captured.Authorization = r.Header.Get("Authorization")

		body, err := io.ReadAll(r.Body)
		if assert.NoError(t, err) && len(body) > 0 {
			assert.NoError(t, json.Unmarshal(body, &captured.Body))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func newTestClient(t *testing.T, server *httptest.Server) *RestClient {
	client, err := NewClient(server.URL + "/rest")
	require.NoError(t, err)
	client.Auth("t.test-token")
	client.SetRateLimit(0)
	return client
}

func TestGetOrdersRequest(t *testing.T) {
	server, captured := newTestServer(t, http.StatusOK, `{
  "orders": [
    {
      "orderId": "31245",
      "executionReportStatus": "EXECUTION_REPORT_STATUS_NEW",
      "lotsRequested": "5",
      "lotsExecuted": "0",
      "initialOrderPrice": {"currency": "rub", "units": "1250", "nano": 500000000},
      "initialSecurityPrice": {"currency": "rub", "units": "250", "nano": 100000000},
      "figi": "BBG004730N88",
      "direction": "ORDER_DIRECTION_BUY",
      "orderType": "ORDER_TYPE_LIMIT",
      "orderDate": "2023-03-01T10:00:00.123Z"
    }
  ]
}`)
	client := newTestClient(t, server)

	orders, err := client.NewGetOrdersRequest().AccountID("2000").Do(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/rest/tinkoff.public.invest.api.contract.v1.OrdersService/GetOrders", captured.Path)
	assert.Equal(t, "Bearer t.test-token", captured.Authorization)
	assert.Equal(t, "2000", captured.Body["accountId"])

	if assert.Len(t, orders, 1) {
		o := orders[0]
		assert.Equal(t, "31245", o.OrderID)
		assert.Equal(t, ExecutionReportStatusNew, o.ExecutionReportStatus)
		assert.Equal(t, Int64String(5), o.LotsRequested)
		assert.Equal(t, Int64String(1250), o.InitialOrderPrice.Units)
		assert.Equal(t, int32(500000000), o.InitialOrderPrice.Nano)
		assert.Equal(t, OrderDirectionBuy, o.Direction)
		assert.Equal(t, "BBG004730N88", o.Figi)
	}
}

func TestPostOrderRequest(t *testing.T) {
	server, captured := newTestServer(t, http.StatusOK, `{
  "orderId": "31246",
  "executionReportStatus": "EXECUTION_REPORT_STATUS_NEW",
  "lotsRequested": "2",
  "lotsExecuted": "0",
  "initialOrderPrice": {"currency": "rub", "units": "500", "nano": 0},
  "figi": "BBG004730N88",
  "direction": "ORDER_DIRECTION_SELL",
  "orderType": "ORDER_TYPE_LIMIT",
  "message": ""
}`)
	client := newTestClient(t, server)

	resp, err := client.NewPostOrderRequest().
		Figi("BBG004730N88").
		Quantity(2).
		Price(Quotation{Units: 250}).
		Direction(OrderDirectionSell).
		AccountID("2000").
		OrderID("1b4c1d2e-0000-4000-8000-000000000001").
		Do(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/rest/tinkoff.public.invest.api.contract.v1.OrdersService/PostOrder", captured.Path)
	assert.Equal(t, "2", captured.Body["quantity"])
	assert.Equal(t, "ORDER_DIRECTION_SELL", captured.Body["direction"])
	assert.Equal(t, "ORDER_TYPE_LIMIT", captured.Body["orderType"])
	assert.Equal(t, "1b4c1d2e-0000-4000-8000-000000000001", captured.Body["orderId"])
	assert.Equal(t, map[string]interface{}{"units": "250", "nano": float64(0)}, captured.Body["price"])

	assert.Equal(t, "31246", resp.OrderID)
	assert.Equal(t, Int64String(2), resp.LotsRequested)

	_, err = client.NewPostOrderRequest().Figi("BBG004730N88").Do(context.Background())
	assert.Error(t, err, "orderId is required")
}

func TestCancelOrderRequest_Sandbox(t *testing.T) {
	server, captured := newTestServer(t, http.StatusOK, `{"time": "2023-03-01T10:00:00Z"}`)
	client := newTestClient(t, server)
	client.SetSandbox(true)

	resp, err := client.NewCancelOrderRequest().AccountID("2000").OrderID("31245").Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/rest/tinkoff.public.invest.api.contract.v1.SandboxService/CancelSandboxOrder", captured.Path)
	assert.Equal(t, "31245", captured.Body["orderId"])
	assert.Equal(t, 2023, resp.Time.Year())
}

func TestRestClient_APIError(t *testing.T) {
	server, _ := newTestServer(t, http.StatusBadRequest, `{"code": 3, "message": "order not found", "description": "30059"}`)
	client := newTestClient(t, server)

	_, err := client.NewCancelOrderRequest().AccountID("2000").OrderID("1").Do(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	if assert.True(t, ok, "expecting *APIError, got %T", err) {
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, 3, apiErr.Code)
		assert.Equal(t, "order not found", apiErr.Message)
		assert.Equal(t, "invest api error: 3 order not found (30059)", apiErr.Error())
	}
}

func TestInt64String(t *testing.T) {
	var v struct {
		A Int64String `json:"a"`
		B Int64String `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "-12", "b": 7}`), &v))
	assert.Equal(t, Int64String(-12), v.A)
	assert.Equal(t, Int64String(7), v.B)

	out, err := json.Marshal(Int64String(42))
	require.NoError(t, err)
	assert.Equal(t, `"42"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"a": true}`), &v))
}
