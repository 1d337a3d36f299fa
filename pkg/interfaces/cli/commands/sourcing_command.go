package commands

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/vsinha/replenish/pkg/application/services/forecast"
	"github.com/vsinha/replenish/pkg/application/services/sourcing"
	"github.com/vsinha/replenish/pkg/config"
	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/replenish/pkg/infrastructure/repositories/memory"
)

func newSourcingCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sourcing",
		Short: "Evaluate emergency sourcing for stock-blocked bundles",
		Long: `Evaluate emergency vendor options for every stock-blocked bundle.
The blocking component's demand velocity is forecast from the sales
history CSV, then each emergency vendor's economics are compared
against waiting on the primary vendor.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundlesFile, _ := cmd.Flags().GetString("bundles")
			salesFile, _ := cmd.Flags().GetString("sales")
			primaryFile, _ := cmd.Flags().GetString("primary-vendors")
			emergencyFile, _ := cmd.Flags().GetString("emergency-vendors")
			margin, _ := cmd.Flags().GetString("margin")
			format, _ := cmd.Flags().GetString("format")

			return runSourcingCommand(cmd, cfg, bundlesFile, salesFile, primaryFile, emergencyFile, margin, format)
		},
	}

	cmd.Flags().String("bundles", "", "Path to bundles CSV file")
	cmd.Flags().String("sales", "", "Path to sales history CSV file")
	cmd.Flags().String("primary-vendors", "", "Path to primary vendors CSV file")
	cmd.Flags().String("emergency-vendors", "", "Path to emergency vendors CSV file")
	cmd.Flags().String("margin", "", "Bundle margin per unit, e.g. 25.50")
	cmd.MarkFlagRequired("bundles")
	cmd.MarkFlagRequired("sales")
	cmd.MarkFlagRequired("primary-vendors")
	cmd.MarkFlagRequired("emergency-vendors")
	cmd.MarkFlagRequired("margin")

	return cmd
}

func runSourcingCommand(cmd *cobra.Command, cfg *config.Config, bundlesFile, salesFile, primaryFile, emergencyFile, margin, format string) error {
	bundleMargin, err := decimal.NewFromString(margin)
	if err != nil {
		return fmt.Errorf("invalid margin %q: %w", margin, err)
	}
	marginThreshold, err := decimal.NewFromString(cfg.MinimumMarginThreshold)
	if err != nil {
		return fmt.Errorf("invalid minimum margin threshold %q: %w", cfg.MinimumMarginThreshold, err)
	}

	loader := csv.NewLoader()

	bundles, err := loader.LoadBundles(bundlesFile)
	if err != nil {
		return fmt.Errorf("error loading bundles: %w", err)
	}
	history, err := loader.LoadSalesHistory(salesFile)
	if err != nil {
		return fmt.Errorf("error loading sales history: %w", err)
	}
	primaryVendors, err := loader.LoadPrimaryVendors(primaryFile)
	if err != nil {
		return fmt.Errorf("error loading primary vendors: %w", err)
	}
	emergencyVendors, err := loader.LoadEmergencyVendors(emergencyFile)
	if err != nil {
		return fmt.Errorf("error loading emergency vendors: %w", err)
	}

	bundleRepo := memory.NewBundleRepository()
	for _, bundle := range bundles {
		bundleRepo.AddBundle(*bundle, nil)
	}

	vendorRepo := memory.NewVendorRepository()
	for componentID, terms := range primaryVendors {
		vendorRepo.SetPrimaryVendor(componentID, terms)
	}
	for componentID, vendors := range emergencyVendors {
		for _, vendor := range vendors {
			vendorRepo.AddEmergencyVendor(componentID, vendor)
		}
	}

	salesRepo := memory.NewSalesHistoryRepository()
	if err := salesRepo.LoadSalesHistory(history); err != nil {
		return fmt.Errorf("error loading sales history into repository: %w", err)
	}

	forecastService := forecast.NewService(forecast.NewForecaster(forecastConfigFrom(cfg)), salesRepo)
	sourcingService := sourcing.NewService(
		sourcing.NewEvaluator(riskPolicyFrom(cfg)), bundleRepo, vendorRepo)

	var results []*entities.EmergencySourcingResult
	for _, bundle := range bundles {
		if bundle.CurrentStock > 0 || bundle.BlockingComponentID == "" {
			continue
		}

		demand, err := forecastService.ForecastSKU(cmd.Context(), entities.SKU(bundle.BlockingComponentID))
		if err != nil {
			if errors.Is(err, forecast.ErrInsufficientData) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipping %s: %v\n", bundle.BundleID, err)
				continue
			}
			return fmt.Errorf("error forecasting velocity for %s: %w", bundle.BundleID, err)
		}

		result, err := sourcingService.EvaluateBundle(cmd.Context(), sourcing.BundleRequest{
			BundleID:               bundle.BundleID,
			BlockingComponentID:    bundle.BlockingComponentID,
			BundleMargin:           bundleMargin,
			DailyVelocity:          demand.DailyForecast,
			VelocityConfidence:     sourcing.ConfidenceScore(demand.Confidence),
			MinimumMarginThreshold: marginThreshold,
		})
		if err != nil {
			return fmt.Errorf("error evaluating bundle %s: %w", bundle.BundleID, err)
		}
		results = append(results, result)
	}

	return renderSourcingResults(cmd.OutOrStdout(), format, results)
}
