package tracker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"

	"github.com/investrobot/ordertracker/pkg/types"
)

func TestCancelReport(t *testing.T) {
	errFilled := errors.New("order is already filled")
	errUnknown := errors.New("order not found")

	report := &CancelReport{
		Instrument: testInstrument,
		Results: []CancelResult{
			{Order: types.Order{OrderID: "1"}},
			{Order: types.Order{OrderID: "2"}, Error: errFilled},
			{Order: types.Order{OrderID: "3"}, Error: errUnknown},
		},
	}

	assert.Len(t, report.Succeeded(), 1)
	assert.Len(t, report.Failed(), 2)

	err := report.Err()
	assert.Len(t, multierr.Errors(err), 2)
	assert.ErrorIs(t, err, errFilled)
	assert.ErrorIs(t, err, errUnknown)

	assert.Equal(t, "BBG004730N88: 1 cancelled, 2 failed\n"+
		"    2: order is already filled\n"+
		"    3: order not found", report.String())

	assert.NoError(t, (&CancelReport{}).Err())
}
