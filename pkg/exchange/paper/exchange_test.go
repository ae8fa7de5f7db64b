package paper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investrobot/ordertracker/pkg/types"
)

func TestExchange(t *testing.T) {
	ctx := context.Background()
	ex := New("rub")

	submit := func(clientOrderID string, lots int64) *types.OrderConfirmation {
		c, err := ex.SubmitOrder(ctx, types.SubmitOrder{
			ClientOrderID: clientOrderID,
			Instrument:    "BBG004730N88",
			Side:          types.SideTypeBuy,
			Type:          types.OrderTypeLimit,
			Quantity:      lots,
			Price:         types.Quotation{Units: 250, Nano: 500000000},
		})
		require.NoError(t, err)
		return c
	}

	c1 := submit("key-1", 2)
	c2 := submit("key-2", 3)
	assert.Equal(t, "paper-1", c1.OrderID)
	assert.Equal(t, "paper-2", c2.OrderID)
	assert.Equal(t, "501.00 ₽", c1.InitialOrderPrice.String())

	// same idempotency key returns the existing order
	dup := submit("key-1", 2)
	assert.Equal(t, c1.OrderID, dup.OrderID)

	orders, err := ex.QueryOrders(ctx)
	require.NoError(t, err)
	if assert.Len(t, orders, 2) {
		assert.Equal(t, "paper-1", orders[0].OrderID)
		assert.Equal(t, types.OrderStatusNew, orders[0].Status)
		assert.Equal(t, "250.5", orders[0].InitialSecurityPrice.Decimal().String())
	}

	require.NoError(t, ex.Fill("paper-2", 1))
	orders, _ = ex.QueryOrders(ctx)
	assert.Equal(t, types.OrderStatusPartiallyFilled, orders[1].Status)

	require.NoError(t, ex.CancelOrder(ctx, "paper-1"))
	assert.ErrorIs(t, ex.CancelOrder(ctx, "paper-1"), ErrOrderNotCancelable)
	assert.ErrorIs(t, ex.CancelOrder(ctx, "paper-9"), ErrOrderNotFound)

	require.NoError(t, ex.Fill("paper-2", 2))
	assert.ErrorIs(t, ex.CancelOrder(ctx, "paper-2"), ErrOrderNotCancelable)

	orders, _ = ex.QueryOrders(ctx)
	assert.Empty(t, orders)
}

func TestExchange_SubmitOrderValidation(t *testing.T) {
	ex := New("rub")
	_, err := ex.SubmitOrder(context.Background(), types.SubmitOrder{Type: types.OrderTypeMarket, Quantity: 1})
	assert.Error(t, err)

	_, err = ex.SubmitOrder(context.Background(), types.SubmitOrder{Type: types.OrderTypeLimit, Quantity: 1})
	assert.Error(t, err)
}
