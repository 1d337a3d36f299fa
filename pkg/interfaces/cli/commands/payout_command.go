package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vsinha/replenish/pkg/application/services/payout"
	"github.com/vsinha/replenish/pkg/domain/entities"
)

func newPayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payout",
		Short: "Calculate picker payouts from picked orders",
		Long: `Calculate per-order and aggregate picker payouts from a JSON file of
picked orders. Pack sizes come from explicit pack_size values or
PACK:<n> product tags.
Example: replenish payout --orders picked.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ordersFile, _ := cmd.Flags().GetString("orders")
			format, _ := cmd.Flags().GetString("format")

			return runPayoutCommand(cmd, ordersFile, format)
		},
	}

	cmd.Flags().String("orders", "", "Path to picked orders JSON file")
	cmd.MarkFlagRequired("orders")

	return cmd
}

func runPayoutCommand(cmd *cobra.Command, ordersFile, format string) error {
	data, err := os.ReadFile(ordersFile)
	if err != nil {
		return fmt.Errorf("error reading orders file: %w", err)
	}

	var orders []entities.PickerOrder
	if err := json.Unmarshal(data, &orders); err != nil {
		return fmt.Errorf("error parsing orders file: %w", err)
	}

	payouts := payout.CalculateOrderPayouts(orders)
	aggregate := payout.AggregatePickerPayout(orders)

	return renderPayouts(cmd.OutOrStdout(), format, payouts, aggregate)
}

func renderPayouts(w io.Writer, format string, payouts []entities.OrderPayout, aggregate entities.AggregatePayout) error {
	if format == "json" {
		return renderJSON(w, struct {
			Orders    []entities.OrderPayout   `json:"orders"`
			Aggregate entities.AggregatePayout `json:"aggregate"`
		}{payouts, aggregate})
	}

	fmt.Fprintf(w, "Picker Payouts\n")
	fmt.Fprintf(w, "==============\n\n")
	for _, p := range payouts {
		fmt.Fprintf(w, "%s: %d pieces (bracket %s) -> $%s\n",
			p.OrderID, p.Payout.TotalPieces, p.Payout.Bracket, p.Payout.PayoutAmount.StringFixed(2))
		for _, item := range p.Payout.Items {
			fmt.Fprintf(w, "  %s: %d x pack of %d = %d pieces\n",
				item.ProductID, item.Quantity, item.PackSize, item.Pieces)
		}
	}

	fmt.Fprintf(w, "\nTotal: $%s across %d orders (%d pieces)\n",
		aggregate.TotalAmount.StringFixed(2), aggregate.OrderCount, aggregate.TotalPieces)

	return nil
}
