package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

func renderJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func renderForecasts(w io.Writer, format string, forecasts []*entities.DemandForecast, summary entities.ForecastSummary) error {
	if format == "json" {
		return renderJSON(w, struct {
			Forecasts []*entities.DemandForecast `json:"forecasts"`
			Summary   entities.ForecastSummary   `json:"summary"`
		}{forecasts, summary})
	}

	fmt.Fprintf(w, "Demand Forecast (30-day horizon)\n")
	fmt.Fprintf(w, "================================\n\n")
	for _, f := range forecasts {
		fmt.Fprintf(w, "%s\n", f.SKU)
		fmt.Fprintf(w, "  Daily forecast:    %.2f units/day\n", f.DailyForecast)
		fmt.Fprintf(w, "  30-day forecast:   %d units\n", f.Forecast30d)
		fmt.Fprintf(w, "  Reorder quantity:  %d units\n", f.RecommendedReorderQty)
		fmt.Fprintf(w, "  Trend:             %s\n", f.Trend)
		fmt.Fprintf(w, "  Confidence:        %s\n", f.Confidence)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d units total demand across %d SKUs\n",
		summary.TotalForecastedDemand, len(forecasts))
	fmt.Fprintf(w, "  Confidence: %d high, %d medium, %d low\n",
		summary.HighConfidenceCount, summary.MediumConfidenceCount, summary.LowConfidenceCount)
	fmt.Fprintf(w, "  Trends:     %d growing, %d stable, %d declining\n",
		summary.GrowingTrendCount, summary.StableTrendCount, summary.DecliningTrendCount)

	return nil
}

func renderAnomalies(w io.Writer, sku entities.SKU, points []entities.HistoricalSalesPoint) {
	if len(points) == 0 {
		return
	}
	fmt.Fprintf(w, "\nAnomalous sales days for %s:\n", sku)
	for _, p := range points {
		fmt.Fprintf(w, "  %s: %d units\n", p.Date.Format("2006-01-02"), p.Quantity)
	}
}

func renderSourcingResults(w io.Writer, format string, results []*entities.EmergencySourcingResult) error {
	if format == "json" {
		return renderJSON(w, results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No stock-blocked bundles to evaluate.")
		return nil
	}

	fmt.Fprintf(w, "Emergency Sourcing Evaluation\n")
	fmt.Fprintf(w, "=============================\n\n")
	for _, r := range results {
		fmt.Fprintf(w, "%s (%s)\n", r.Bundle.BundleName, r.Bundle.BundleID)
		fmt.Fprintf(w, "  Blocking component: %s\n", r.Bundle.BlockingComponentID)
		fmt.Fprintf(w, "  Expected lost profit waiting %d days: $%s\n",
			r.OpportunityCost.PrimaryLeadTimeDays, r.OpportunityCost.ExpectedLostProfit.StringFixed(2))

		for _, option := range r.Options {
			marker := " "
			if option.Recommended {
				marker = "*"
			}
			fmt.Fprintf(w, "  %s %s: %d days, net benefit $%s, margin after $%s\n",
				marker, option.VendorName, option.LeadTimeDays,
				option.NetBenefit.StringFixed(2), option.MarginAfterEmergency.StringFixed(2))
		}

		fmt.Fprintf(w, "  %s\n", r.ApprovalCard.Title)
		if r.Recommendation.ShouldProceed {
			fmt.Fprintf(w, "    Vendor:    %s\n", r.Recommendation.RecommendedVendorID)
			fmt.Fprintf(w, "    Benefit:   $%s\n", r.Recommendation.NetBenefit.StringFixed(2))
			fmt.Fprintf(w, "    Risk:      %s\n", r.Recommendation.RiskLevel)
			fmt.Fprintf(w, "    Timeline:  %d days sooner\n", r.ApprovalCard.TimelineImpact)
		}
		fmt.Fprintln(w)
	}

	return nil
}

func renderReconciliationResult(w io.Writer, format string, result *entities.ReconciliationJobResult) error {
	if format == "json" {
		return renderJSON(w, result)
	}

	fmt.Fprintf(w, "Reconciliation %s\n", result.JobID)
	fmt.Fprintf(w, "  Status:     %s\n", result.Status)
	fmt.Fprintf(w, "  Duration:   %v\n", result.Duration)
	if result.ConstrainedLocationZeroed {
		fmt.Fprintf(w, "  Constrained location: %d variants zeroed\n", result.VariantsZeroed)
	}
	fmt.Fprintf(w, "  Bundles:    %d processed, %d updated, %d with errors\n",
		result.BundlesProcessed, result.BundlesUpdated, result.BundlesWithErrors)
	fmt.Fprintf(w, "  Adjustments: %d applied, %d errors\n",
		result.AdjustmentsApplied, len(result.AdjustmentErrors))

	if len(result.StockDiscrepancies) > 0 {
		fmt.Fprintln(w, "  Discrepancies:")
		for _, d := range result.StockDiscrepancies {
			fmt.Fprintf(w, "    %s: stored %d, recomputed %d (%+d)\n",
				d.BundleID, d.ActualStock, d.ExpectedStock, d.Discrepancy)
		}
	}

	if len(result.CriticalAlerts) > 0 {
		fmt.Fprintln(w, "  Alerts:")
		for _, alert := range result.CriticalAlerts {
			fmt.Fprintf(w, "    [%s] %s\n", alert.Level, alert.Message)
		}
	}

	return nil
}
