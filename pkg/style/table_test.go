package style

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/investrobot/ordertracker/pkg/types"
)

func TestRenderOrders(t *testing.T) {
	var buf bytes.Buffer
	RenderOrders(&buf, []types.Order{
		{
			OrderID:              "31245",
			Instrument:           "BBG004730N88",
			Direction:            types.SideTypeBuy,
			Status:               types.OrderStatusNew,
			LotsRequested:        5,
			InitialSecurityPrice: types.MoneyValue{Currency: "rub", Units: 250},
			InitialOrderPrice:    types.MoneyValue{Currency: "rub", Units: 1250},
		},
		{
			OrderID:       "31246",
			Instrument:    "BBG000B9XRY4",
			Direction:     types.SideTypeSell,
			Status:        types.OrderStatus("PENDING"),
			LotsRequested: 1,
		},
	}, "BBG004730N88")

	out := buf.String()
	assert.Contains(t, out, "31245")
	assert.Contains(t, out, "BBG000B9XRY4")
	assert.Contains(t, out, "Unknown status PENDING")
	assert.Contains(t, out, "1,250.00 ₽")
}
