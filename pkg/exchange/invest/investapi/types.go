package investapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type OrderDirection string

const (
	OrderDirectionUnspecified OrderDirection = "ORDER_DIRECTION_UNSPECIFIED"
	OrderDirectionBuy         OrderDirection = "ORDER_DIRECTION_BUY"
	OrderDirectionSell        OrderDirection = "ORDER_DIRECTION_SELL"
)

type OrderType string

const (
	OrderTypeLimit  OrderType = "ORDER_TYPE_LIMIT"
	OrderTypeMarket OrderType = "ORDER_TYPE_MARKET"
)

type ExecutionReportStatus string

const (
	ExecutionReportStatusUnspecified   ExecutionReportStatus = "EXECUTION_REPORT_STATUS_UNSPECIFIED"
	ExecutionReportStatusFill          ExecutionReportStatus = "EXECUTION_REPORT_STATUS_FILL"
	ExecutionReportStatusRejected      ExecutionReportStatus = "EXECUTION_REPORT_STATUS_REJECTED"
	ExecutionReportStatusCancelled     ExecutionReportStatus = "EXECUTION_REPORT_STATUS_CANCELLED"
	ExecutionReportStatusNew           ExecutionReportStatus = "EXECUTION_REPORT_STATUS_NEW"
	ExecutionReportStatusPartiallyFill ExecutionReportStatus = "EXECUTION_REPORT_STATUS_PARTIALLYFILL"
)

// Int64String is an int64 encoded as a JSON string, the gateway encodes all
// 64-bit integers this way.
type Int64String int64

func (s Int64String) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(s), 10))
}

func (s *Int64String) UnmarshalJSON(body []byte) error {
	var arg interface{}
	if err := json.Unmarshal(body, &arg); err != nil {
		return err
	}

	switch ta := arg.(type) {
	case string:
		i, err := strconv.ParseInt(ta, 10, 64)
		if err != nil {
			return err
		}
		*s = Int64String(i)

	case float64:
		*s = Int64String(ta)

	case nil:
		*s = 0

	default:
		return fmt.Errorf("Int64String: unsupported value type %T", ta)
	}

	return nil
}

type Quotation struct {
	Units Int64String `json:"units"`
	Nano  int32       `json:"nano"`
}

type MoneyValue struct {
	Currency string      `json:"currency"`
	Units    Int64String `json:"units"`
	Nano     int32       `json:"nano"`
}

type OrderState struct {
	OrderID               string                `json:"orderId"`
	ExecutionReportStatus ExecutionReportStatus `json:"executionReportStatus"`
	LotsRequested         Int64String           `json:"lotsRequested"`
	LotsExecuted          Int64String           `json:"lotsExecuted"`
	InitialOrderPrice     MoneyValue            `json:"initialOrderPrice"`
	ExecutedOrderPrice    MoneyValue            `json:"executedOrderPrice"`
	TotalOrderAmount      MoneyValue            `json:"totalOrderAmount"`
	AveragePositionPrice  MoneyValue            `json:"averagePositionPrice"`
	InitialCommission     MoneyValue            `json:"initialCommission"`
	ExecutedCommission    MoneyValue            `json:"executedCommission"`
	Figi                  string                `json:"figi"`
	Direction             OrderDirection        `json:"direction"`
	InitialSecurityPrice  MoneyValue            `json:"initialSecurityPrice"`
	ServiceCommission     MoneyValue            `json:"serviceCommission"`
	Currency              string                `json:"currency"`
	OrderType             OrderType             `json:"orderType"`
	OrderDate             time.Time             `json:"orderDate"`
	InstrumentUID         string                `json:"instrumentUid"`
	OrderRequestID        string                `json:"orderRequestId"`
}

type GetOrdersResponse struct {
	Orders []OrderState `json:"orders"`
}

type PostOrderResponse struct {
	OrderID               string                `json:"orderId"`
	ExecutionReportStatus ExecutionReportStatus `json:"executionReportStatus"`
	LotsRequested         Int64String           `json:"lotsRequested"`
	LotsExecuted          Int64String           `json:"lotsExecuted"`
	InitialOrderPrice     MoneyValue            `json:"initialOrderPrice"`
	ExecutedOrderPrice    MoneyValue            `json:"executedOrderPrice"`
	TotalOrderAmount      MoneyValue            `json:"totalOrderAmount"`
	InitialCommission     MoneyValue            `json:"initialCommission"`
	Figi                  string                `json:"figi"`
	Direction             OrderDirection        `json:"direction"`
	InitialSecurityPrice  MoneyValue            `json:"initialSecurityPrice"`
	OrderType             OrderType             `json:"orderType"`
	Message               string                `json:"message"`
	OrderRequestID        string                `json:"orderRequestId"`
}

type CancelOrderResponse struct {
	Time time.Time `json:"time"`
}

// APIError is the error body returned by the gateway.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        int    `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("invest api error: %d %s (%s)", e.Code, e.Message, e.Description)
	}
	return fmt.Sprintf("invest api error: %d %s", e.Code, e.Message)
}
