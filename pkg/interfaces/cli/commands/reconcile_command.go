package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vsinha/replenish/pkg/application/services/orchestration"
	"github.com/vsinha/replenish/pkg/config"
	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/domain/repositories"
	"github.com/vsinha/replenish/pkg/infrastructure/events"
	"github.com/vsinha/replenish/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/replenish/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/replenish/pkg/infrastructure/shopify"
)

func newReconcileCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run the nightly warehouse reconciliation",
		Long: `Run the nightly reconciliation: zero availability at the constrained
location, recompute every bundle's virtual stock from component
availability, push discrepancy adjustments, and raise stock alerts.
Adjustments go to Shopify when SHOPIFY_SHOP_URL is configured,
otherwise they are recorded in memory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bundlesFile, _ := cmd.Flags().GetString("bundles")
			componentsFile, _ := cmd.Flags().GetString("components")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			format, _ := cmd.Flags().GetString("format")

			return runReconcileCommand(cmd, cfg, bundlesFile, componentsFile, dryRun, format)
		},
	}

	cmd.Flags().String("bundles", "", "Path to bundles CSV file")
	cmd.Flags().String("components", "", "Path to bundle components CSV file")
	cmd.Flags().Bool("dry-run", false, "Recompute virtual stock without pushing adjustments")
	cmd.MarkFlagRequired("bundles")
	cmd.MarkFlagRequired("components")

	return cmd
}

func runReconcileCommand(cmd *cobra.Command, cfg *config.Config, bundlesFile, componentsFile string, dryRun bool, format string) error {
	loader := csv.NewLoader()

	bundles, err := loader.LoadBundles(bundlesFile)
	if err != nil {
		return fmt.Errorf("error loading bundles: %w", err)
	}
	components, err := loader.LoadBundleComponents(componentsFile)
	if err != nil {
		return fmt.Errorf("error loading bundle components: %w", err)
	}

	bundleRepo := memory.NewBundleRepository()
	for _, bundle := range bundles {
		bundleRepo.AddBundle(*bundle, components[bundle.BundleID])
	}

	var adjuster repositories.CommerceAdjuster
	if cfg.ShopifyShopURL != "" {
		adjuster = shopify.NewAdjuster(
			cfg.ShopifyShopURL, cfg.ShopifyAccessToken, cfg.ShopifyAPIVersion,
			cfg.ConstrainedLocationID)
	} else {
		adjuster = memory.NewCommerceAdjuster(0)
	}

	sink := events.NewEventSink(events.NewInMemoryEventStore())
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	orchestrator := orchestration.NewReconciliationOrchestrator(bundleRepo, adjuster, sink, logger)
	result := orchestrator.Run(cmd.Context(), orchestration.Params{
		ConstrainedLocationID: cfg.ConstrainedLocationID,
		AlertThreshold:        cfg.AlertThreshold,
		DryRun:                dryRun || cfg.DryRun,
	})

	if err := renderReconciliationResult(cmd.OutOrStdout(), format, result); err != nil {
		return err
	}

	if result.Status == entities.JobFailed {
		return fmt.Errorf("reconciliation failed: %d adjustment errors, %d bundles with errors",
			len(result.AdjustmentErrors), result.BundlesWithErrors)
	}
	return nil
}
