package slackstyle

import "github.com/investrobot/ordertracker/pkg/types"

const Green = "#228B22"
const Red = "#800000"
const Orange = "#FF8C00"

// SideColor returns the attachment color of the order side.
func SideColor(side types.SideType) string {
	if side == types.SideTypeSell {
		return Red
	}
	return Green
}

func SideIcon(side types.SideType) string {
	switch side {
	case types.SideTypeBuy:
		return ":chart_with_upwards_trend:"
	case types.SideTypeSell:
		return ":chart_with_downwards_trend:"
	}
	return ""
}
