package invest

import (
	"github.com/investrobot/ordertracker/pkg/exchange/invest/investapi"
	"github.com/investrobot/ordertracker/pkg/types"
)

func toGlobalSide(direction investapi.OrderDirection) types.SideType {
	switch direction {
	case investapi.OrderDirectionBuy:
		return types.SideTypeBuy
	case investapi.OrderDirectionSell:
		return types.SideTypeSell
	}
	return types.SideType(direction)
}

func toLocalSide(side types.SideType) investapi.OrderDirection {
	switch side {
	case types.SideTypeBuy:
		return investapi.OrderDirectionBuy
	case types.SideTypeSell:
		return investapi.OrderDirectionSell
	}
	return investapi.OrderDirectionUnspecified
}

func toGlobalOrderType(orderType investapi.OrderType) types.OrderType {
	switch orderType {
	case investapi.OrderTypeLimit:
		return types.OrderTypeLimit
	case investapi.OrderTypeMarket:
		return types.OrderTypeMarket
	}
	return types.OrderType(orderType)
}

func toLocalOrderType(orderType types.OrderType) investapi.OrderType {
	if orderType == types.OrderTypeMarket {
		return investapi.OrderTypeMarket
	}
	return investapi.OrderTypeLimit
}

// toGlobalStatus keeps the raw status for the values we don't know, so that
// it shows up in the unknown status label.
func toGlobalStatus(status investapi.ExecutionReportStatus) types.OrderStatus {
	switch status {
	case investapi.ExecutionReportStatusNew:
		return types.OrderStatusNew
	case investapi.ExecutionReportStatusFill:
		return types.OrderStatusFilled
	case investapi.ExecutionReportStatusPartiallyFill:
		return types.OrderStatusPartiallyFilled
	case investapi.ExecutionReportStatusRejected:
		return types.OrderStatusRejected
	case investapi.ExecutionReportStatusCancelled:
		return types.OrderStatusCancelled
	}
	return types.OrderStatus(status)
}

func toGlobalMoneyValue(m investapi.MoneyValue) types.MoneyValue {
	return types.MoneyValue{Currency: m.Currency, Units: int64(m.Units), Nano: m.Nano}
}

func toLocalQuotation(q types.Quotation) investapi.Quotation {
	return investapi.Quotation{Units: investapi.Int64String(q.Units), Nano: q.Nano}
}

func toGlobalOrder(o investapi.OrderState) types.Order {
	return types.Order{
		OrderID:              o.OrderID,
		Instrument:           o.Figi,
		Direction:            toGlobalSide(o.Direction),
		Type:                 toGlobalOrderType(o.OrderType),
		Status:               toGlobalStatus(o.ExecutionReportStatus),
		LotsRequested:        int64(o.LotsRequested),
		LotsExecuted:         int64(o.LotsExecuted),
		InitialOrderPrice:    toGlobalMoneyValue(o.InitialOrderPrice),
		InitialSecurityPrice: toGlobalMoneyValue(o.InitialSecurityPrice),
		CreationTime:         o.OrderDate,
	}
}

func toGlobalOrders(orders []investapi.OrderState) []types.Order {
	globalOrders := make([]types.Order, 0, len(orders))
	for _, o := range orders {
		globalOrders = append(globalOrders, toGlobalOrder(o))
	}
	return globalOrders
}

func toGlobalConfirmation(resp *investapi.PostOrderResponse, clientOrderID string) *types.OrderConfirmation {
	return &types.OrderConfirmation{
		OrderID:           resp.OrderID,
		ClientOrderID:     clientOrderID,
		Status:            toGlobalStatus(resp.ExecutionReportStatus),
		LotsRequested:     int64(resp.LotsRequested),
		LotsExecuted:      int64(resp.LotsExecuted),
		InitialOrderPrice: toGlobalMoneyValue(resp.InitialOrderPrice),
		Message:           resp.Message,
	}
}
