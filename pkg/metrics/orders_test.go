package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/investrobot/ordertracker/pkg/tracker"
	"github.com/investrobot/ordertracker/pkg/types"
)

func TestSink(t *testing.T) {
	const instrument = "BBG_METRICS_TEST"
	sink := Sink{}

	sink.Emit(tracker.Event{Type: tracker.EventOrdersLoaded, Instrument: instrument, Count: 3})
	assert.Equal(t, 3.0, testutil.ToFloat64(TrackedOrdersMetrics.WithLabelValues(instrument)))

	sink.Emit(tracker.Event{
		Type:       tracker.EventOrderSubmitted,
		Instrument: instrument,
		Submit:     &types.SubmitOrder{Side: types.SideTypeBuy},
	})
	assert.Equal(t, 1.0, testutil.ToFloat64(SubmittedOrdersMetrics.WithLabelValues(instrument, "BUY")))

	sink.Emit(tracker.Event{Type: tracker.EventOrderCancelled, Instrument: instrument})
	sink.Emit(tracker.Event{Type: tracker.EventOrderCancelled, Instrument: instrument})
	sink.Emit(tracker.Event{Type: tracker.EventOrderCancelFailed, Instrument: instrument, Error: errors.New("filled")})
	assert.Equal(t, 2.0, testutil.ToFloat64(CancelledOrdersMetrics.WithLabelValues(instrument, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(CancelledOrdersMetrics.WithLabelValues(instrument, "error")))

	// events without a metric are ignored
	sink.Emit(tracker.Event{Type: tracker.EventOrderListed, Instrument: instrument})
	assert.Equal(t, 3.0, testutil.ToFloat64(TrackedOrdersMetrics.WithLabelValues(instrument)))
}
