package types

// FilterOrdersByInstrument returns the orders of the given instrument, keeping their order.
func FilterOrdersByInstrument(orders []Order, instrument string) (filtered []Order) {
	for _, order := range orders {
		if order.Instrument == instrument {
			filtered = append(filtered, order)
		}
	}

	return filtered
}

func ClassifyOrdersByStatus(orders []Order) (opened, cancelled, filled, unexpected []Order) {
	for _, order := range orders {
		switch order.Status {
		case OrderStatusNew, OrderStatusPartiallyFilled:
			opened = append(opened, order)
		case OrderStatusFilled:
			filled = append(filled, order)
		case OrderStatusCancelled:
			cancelled = append(cancelled, order)
		default:
			unexpected = append(unexpected, order)
		}
	}

	return opened, cancelled, filled, unexpected
}
