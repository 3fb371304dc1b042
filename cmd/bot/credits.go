package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var creditsCmd = &cobra.Command{
	Use:   "credits <amount>",
	Short: "Offer credits to the bot through its donation hook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[0], err)
		}

		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		accepted := a.gateway.AcceptCredits(ctx, amount)
		fmt.Fprintf(cmd.OutOrStdout(), "Accepted %d credits, balance is now %d\n", accepted, a.host.Balance())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(creditsCmd)
}
