package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/investrobot/ordertracker/pkg/types"
)

// go run ./cmd/ordertracker submit --side=buy --quantity=5 --price=250.5
var submitCmd = &cobra.Command{
	Use:          "submit",
	Short:        "submit a limit order for the tracked instrument",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		sideStr, err := cmd.Flags().GetString("side")
		if err != nil {
			return err
		}

		side, err := parseSide(sideStr)
		if err != nil {
			return err
		}

		quantity, err := cmd.Flags().GetInt64("quantity")
		if err != nil {
			return err
		}

		priceStr, err := cmd.Flags().GetString("price")
		if err != nil {
			return err
		}

		price, err := types.ParseQuotation(priceStr)
		if err != nil {
			return errors.Wrapf(err, "invalid price %q", priceStr)
		}

		cancelExisting, err := cmd.Flags().GetBool("cancel-existing")
		if err != nil {
			return err
		}

		_, t, err := setupTracker()
		if err != nil {
			return err
		}

		if cancelExisting {
			report, err := t.Reconcile(ctx)
			if report != nil {
				log.Info(report.String())
			}

			if err != nil {
				return err
			}
		}

		confirmation, err := t.SubmitLimitOrder(ctx, side, quantity, price)
		if err != nil {
			return err
		}

		log.Infof("order %s: %s", confirmation.OrderID, confirmation.Status.Label())
		return nil
	},
}

func parseSide(s string) (types.SideType, error) {
	side := types.SideType(strings.ToUpper(strings.TrimSpace(s)))
	if !side.Valid() {
		return "", fmt.Errorf("invalid side %q, expecting buy or sell", s)
	}
	return side, nil
}

func init() {
	submitCmd.Flags().String("side", "", "order side, buy or sell")
	submitCmd.Flags().Int64("quantity", 0, "number of lots")
	submitCmd.Flags().String("price", "", "limit price of one instrument unit")
	submitCmd.Flags().Bool("cancel-existing", false, "cancel the orders of the instrument before submitting")
	RootCmd.AddCommand(submitCmd)
}
