package cmd

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investrobot/ordertracker/pkg/config"
	"github.com/investrobot/ordertracker/pkg/exchange/paper"
	"github.com/investrobot/ordertracker/pkg/tracker"
	"github.com/investrobot/ordertracker/pkg/types"
)

func newPaperJob(t *testing.T, cancelStale bool) (*tickJob, *paper.Exchange) {
	cfg := &config.Config{Instrument: "BBG004730N88", DryRun: true, CancelStale: cancelStale}
	cfg.Defaults()

	broker := paper.New(cfg.Broker.Currency)
	orderTracker, err := tracker.New(cfg.Instrument, broker, tracker.WithEventSink(&tracker.EventRecorder{}))
	require.NoError(t, err)

	return &tickJob{tracker: orderTracker, config: cfg}, broker
}

func submitPaperOrder(t *testing.T, broker *paper.Exchange, instrument string) {
	_, err := broker.SubmitOrder(context.Background(), types.SubmitOrder{
		ClientOrderID: uuid.NewString(),
		Instrument:    instrument,
		Side:          types.SideTypeBuy,
		Type:          types.OrderTypeLimit,
		Quantity:      1,
		Price:         types.Quotation{Units: 100},
	})
	require.NoError(t, err)
}

func TestTickJob_CancelStale(t *testing.T) {
	job, broker := newPaperJob(t, true)
	submitPaperOrder(t, broker, "BBG004730N88")
	submitPaperOrder(t, broker, "BBG000B9XRY4")

	job.Run(context.Background())

	orders, err := broker.QueryOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "BBG000B9XRY4", orders[0].Instrument)
}

func TestTickJob_RefreshOnly(t *testing.T) {
	job, broker := newPaperJob(t, false)
	submitPaperOrder(t, broker, "BBG004730N88")

	job.Run(context.Background())

	assert.Len(t, job.tracker.TrackedOrders(), 1)

	orders, err := broker.QueryOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
