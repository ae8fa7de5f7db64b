package style

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/investrobot/ordertracker/pkg/types"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsYellowWhiteOnBlack,
	}
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	return &style
}

// RenderOrders writes the orders as a table, the tracked instrument orders are marked with "*".
func RenderOrders(w io.Writer, orders []types.Order, trackedInstrument string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*NewDefaultTableStyle())
	t.AppendHeader(table.Row{"", "Order ID", "Instrument", "Side", "Status", "Lots", "Executed", "Price", "Order Value"})

	for _, o := range orders {
		mark := ""
		if o.Instrument == trackedInstrument {
			mark = "*"
		}

		t.AppendRow(table.Row{
			mark,
			o.OrderID,
			o.Instrument,
			o.Direction.Label(),
			o.Status.Label(),
			o.LotsRequested,
			o.LotsExecuted,
			o.InitialSecurityPrice.String(),
			o.InitialOrderPrice.String(),
		})
	}

	t.AppendFooter(table.Row{"", "", "", "", "Total", len(orders)})
	t.Render()
}
