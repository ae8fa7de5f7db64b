package types

import (
	"sort"
)

// SortOrdersAscending sorts the orders by creation time, the oldest first.
func SortOrdersAscending(orders []Order) []Order {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreationTime.Before(orders[j].CreationTime)
	})
	return orders
}
