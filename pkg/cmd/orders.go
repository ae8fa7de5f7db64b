package cmd

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/investrobot/ordertracker/pkg/style"
	"github.com/investrobot/ordertracker/pkg/types"
)

// go run ./cmd/ordertracker orders --instrument=BBG004730N88
var ordersCmd = &cobra.Command{
	Use:          "orders",
	Short:        "list the account orders",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, t, err := setupTracker()
		if err != nil {
			return err
		}

		if err := t.Refresh(ctx); err != nil {
			return err
		}

		orders := types.SortOrdersAscending(t.Orders())
		style.RenderOrders(os.Stdout, orders, cfg.Instrument)

		opened, cancelled, filled, unexpected := types.ClassifyOrdersByStatus(orders)
		log.Infof("%d opened, %d cancelled, %d filled, %d unexpected, %d tracked",
			len(opened), len(cancelled), len(filled), len(unexpected), len(t.TrackedOrders()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(ordersCmd)
}
