package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vsinha/replenish/pkg/application/services/forecast"
	"github.com/vsinha/replenish/pkg/config"
	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/replenish/pkg/infrastructure/repositories/memory"
)

func newForecastCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Generate 30-day demand forecasts from sales history",
		Long: `Generate per-SKU 30-day demand forecasts from a daily sales history
CSV. Without --sku flags every SKU in the file is forecast.
Example: replenish forecast --sales data/sales.csv --sku WIDGET-001`,
		RunE: func(cmd *cobra.Command, args []string) error {
			salesFile, _ := cmd.Flags().GetString("sales")
			skus, _ := cmd.Flags().GetStringSlice("sku")
			format, _ := cmd.Flags().GetString("format")
			anomalies, _ := cmd.Flags().GetBool("anomalies")

			return runForecastCommand(cmd, cfg, salesFile, skus, format, anomalies)
		},
	}

	cmd.Flags().String("sales", "", "Path to sales history CSV file")
	cmd.Flags().StringSlice("sku", nil, "SKU to forecast (repeatable; default all)")
	cmd.Flags().Bool("anomalies", false, "Also report anomalous sales days per SKU")
	cmd.MarkFlagRequired("sales")

	return cmd
}

func runForecastCommand(cmd *cobra.Command, cfg *config.Config, salesFile string, skus []string, format string, anomalies bool) error {
	history, err := csv.NewLoader().LoadSalesHistory(salesFile)
	if err != nil {
		return fmt.Errorf("error loading sales history: %w", err)
	}

	salesRepo := memory.NewSalesHistoryRepository()
	if err := salesRepo.LoadSalesHistory(history); err != nil {
		return fmt.Errorf("error loading sales history into repository: %w", err)
	}

	targets := make([]entities.SKU, 0, len(history))
	if len(skus) > 0 {
		for _, sku := range skus {
			targets = append(targets, entities.SKU(sku))
		}
	} else {
		for sku := range history {
			targets = append(targets, sku)
		}
		sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	}

	service := forecast.NewService(forecast.NewForecaster(forecastConfigFrom(cfg)), salesRepo)

	forecasts, summary, err := service.ForecastSKUs(cmd.Context(), targets)
	if err != nil {
		return fmt.Errorf("error generating forecasts: %w", err)
	}

	if err := renderForecasts(cmd.OutOrStdout(), format, forecasts, summary); err != nil {
		return err
	}

	if anomalies {
		for _, sku := range targets {
			points, err := service.DetectSKUAnomalies(cmd.Context(), sku, cfg.AnomalyZThreshold)
			if err != nil {
				return fmt.Errorf("error detecting anomalies for %s: %w", sku, err)
			}
			renderAnomalies(cmd.OutOrStdout(), sku, points)
		}
	}

	return nil
}
