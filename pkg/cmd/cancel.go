package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// go run ./cmd/ordertracker cancel --instrument=BBG004730N88
var cancelCmd = &cobra.Command{
	Use:          "cancel",
	Short:        "cancel every order of the tracked instrument",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		_, t, err := setupTracker()
		if err != nil {
			return err
		}

		report, err := t.Reconcile(ctx)
		if report != nil {
			fmt.Println(report.String())
		}

		return err
	},
}

func init() {
	RootCmd.AddCommand(cancelCmd)
}
