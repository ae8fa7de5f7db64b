package tracker

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/investrobot/ordertracker/pkg/types"
)

// CancelResult is the outcome of one cancellation request.
type CancelResult struct {
	Order types.Order
	Error error
}

func (r CancelResult) OK() bool {
	return r.Error == nil
}

// CancelReport collects the outcome of every cancellation issued by
// CancelTrackedOrders, in the snapshot order.
type CancelReport struct {
	Instrument string
	Results    []CancelResult
}

func (r *CancelReport) Succeeded() (orders []types.Order) {
	for _, result := range r.Results {
		if result.OK() {
			orders = append(orders, result.Order)
		}
	}
	return orders
}

func (r *CancelReport) Failed() (results []CancelResult) {
	for _, result := range r.Results {
		if !result.OK() {
			results = append(results, result)
		}
	}
	return results
}

// Err combines the failures, nil when every cancellation succeeded.
func (r *CancelReport) Err() error {
	var errs error
	for _, result := range r.Results {
		if result.Error != nil {
			errs = multierr.Append(errs, fmt.Errorf("cancel order %s: %w", result.Order.OrderID, result.Error))
		}
	}
	return errs
}

func (r *CancelReport) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d cancelled, %d failed", r.Instrument, len(r.Succeeded()), len(r.Failed()))
	for _, result := range r.Failed() {
		fmt.Fprintf(&sb, "\n    %s: %v", result.Order.OrderID, result.Error)
	}
	return sb.String()
}
