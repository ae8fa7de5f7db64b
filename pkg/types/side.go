package types

// SideType define side type of order
type SideType string

const (
	SideTypeBuy  = SideType("BUY")
	SideTypeSell = SideType("SELL")
)

func (side SideType) Reverse() SideType {
	switch side {
	case SideTypeBuy:
		return SideTypeSell

	case SideTypeSell:
		return SideTypeBuy
	}

	return side
}

func (side SideType) Valid() bool {
	return side == SideTypeBuy || side == SideTypeSell
}

// Label is the direction word used in order listings.
func (side SideType) Label() string {
	if side == SideTypeBuy {
		return "buy"
	}
	return "sell"
}

// ActionLabel is the noun used when describing a new order, e.g. "purchase order".
func (side SideType) ActionLabel() string {
	if side == SideTypeBuy {
		return "purchase"
	}
	return "sale"
}
