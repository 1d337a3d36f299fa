// Package commands wires the replenishment engine into a CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/vsinha/replenish/pkg/application/services/forecast"
	"github.com/vsinha/replenish/pkg/application/services/sourcing"
	"github.com/vsinha/replenish/pkg/config"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "replenish",
		Short: "replenish - inventory replenishment decision engine",
		Long: `replenish analyzes daily sales history to forecast demand, evaluates
emergency sourcing options for stock-blocked bundles, and reconciles
virtual bundle stock against component availability.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newForecastCmd(cfg))
	rootCmd.AddCommand(newSourcingCmd(cfg))
	rootCmd.AddCommand(newReconcileCmd(cfg))
	rootCmd.AddCommand(newPayoutCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().String("format", "text", "Output format: text, json")

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("replenish v1.0.0")
		},
	}
}

// forecastConfigFrom maps the application config onto the forecaster's
// tunables, keeping the forecaster's own defaults for the rest
func forecastConfigFrom(cfg *config.Config) forecast.Config {
	fc := forecast.DefaultConfig()
	fc.EMAAlpha = cfg.EMAAlpha
	fc.WeightEMA = cfg.EMAWeight
	fc.WeightMA7 = cfg.MA7Weight
	fc.WeightMA30 = cfg.MA30Weight
	fc.WeightHistorical = cfg.AverageWeight
	fc.BufferLow = cfg.LowConfidenceBuffer
	fc.BufferMedium = cfg.MediumConfidenceBuffer
	fc.BufferHigh = cfg.HighConfidenceBuffer
	return fc
}

func riskPolicyFrom(cfg *config.Config) sourcing.RiskPolicy {
	return sourcing.RiskPolicy{
		HighRiskConfidenceFloor: cfg.HighRiskConfidenceFloor,
		LowRiskConfidenceFloor:  cfg.LowRiskConfidenceFloor,
		HighRiskLeadTimeDays:    cfg.HighRiskLeadTimeDays,
		LowRiskLeadTimeDays:     cfg.LowRiskLeadTimeDays,
	}
}
