package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/replenish/pkg/application/services/forecast"
	"github.com/vsinha/replenish/pkg/application/services/orchestration"
	"github.com/vsinha/replenish/pkg/application/services/sourcing"
	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/infrastructure/events"
	"github.com/vsinha/replenish/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Set up in-memory data for one bundle and its blocking component
	salesRepo := memory.NewSalesHistoryRepository()
	bundleRepo := memory.NewBundleRepository()
	vendorRepo := memory.NewVendorRepository()
	seedData(salesRepo, bundleRepo, vendorRepo)

	fmt.Println("📈 Forecasting demand for COMP-001...")

	forecastService := forecast.NewService(forecast.NewForecaster(forecast.DefaultConfig()), salesRepo)
	demand, err := forecastService.ForecastSKU(ctx, "COMP-001")
	if err != nil {
		fmt.Printf("❌ Forecast failed: %v\n", err)
		return
	}

	fmt.Printf("  Daily forecast: %.2f units/day (%s trend, %s confidence)\n",
		demand.DailyForecast, demand.Trend, demand.Confidence)
	fmt.Printf("  30-day forecast: %d units, reorder %d\n\n",
		demand.Forecast30d, demand.RecommendedReorderQty)

	fmt.Println("🚨 Evaluating emergency sourcing for the blocked bundle...")

	sourcingService := sourcing.NewService(
		sourcing.NewEvaluator(sourcing.DefaultRiskPolicy()), bundleRepo, vendorRepo)

	result, err := sourcingService.EvaluateBundle(ctx, sourcing.BundleRequest{
		BundleID:               "bundle_001",
		BlockingComponentID:    "COMP-001",
		BundleMargin:           decimal.RequireFromString("25.50"),
		DailyVelocity:          demand.DailyForecast,
		VelocityConfidence:     sourcing.ConfidenceScore(demand.Confidence),
		MinimumMarginThreshold: decimal.RequireFromString("0.20"),
	})
	if err != nil {
		fmt.Printf("❌ Sourcing evaluation failed: %v\n", err)
		return
	}

	fmt.Printf("  Lost profit waiting %d days: $%s\n",
		result.OpportunityCost.PrimaryLeadTimeDays,
		result.OpportunityCost.ExpectedLostProfit.StringFixed(2))
	for _, option := range result.Options {
		fmt.Printf("  %s: net benefit $%s over %d days\n",
			option.VendorName, option.NetBenefit.StringFixed(2), option.LeadTimeDays)
	}
	fmt.Printf("  %s\n\n", result.ApprovalCard.Title)

	fmt.Println("🔄 Running nightly reconciliation...")

	adjuster := memory.NewCommerceAdjuster(12)
	sink := events.NewEventSink(events.NewInMemoryEventStore())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	orchestrator := orchestration.NewReconciliationOrchestrator(bundleRepo, adjuster, sink, logger)
	job := orchestrator.Run(ctx, orchestration.Params{
		ConstrainedLocationID: "loc_warehouse_b",
		AlertThreshold:        5,
	})

	fmt.Printf("  Status: %s\n", job.Status)
	fmt.Printf("  Bundles: %d processed, %d updated\n", job.BundlesProcessed, job.BundlesUpdated)
	for _, d := range job.StockDiscrepancies {
		fmt.Printf("  Discrepancy: %s stored %d, recomputed %d\n", d.BundleID, d.ActualStock, d.ExpectedStock)
	}
	for _, alert := range job.CriticalAlerts {
		fmt.Printf("  Alert: %s\n", alert.Message)
	}
}

func seedData(salesRepo *memory.SalesHistoryRepository, bundleRepo *memory.BundleRepository, vendorRepo *memory.VendorRepository) {
	// Thirty days of steady component demand around 5 units/day
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 30; day++ {
		quantity := 5
		if day%7 == 0 {
			quantity = 6
		}
		salesRepo.AddSalesPoint("COMP-001", entities.HistoricalSalesPoint{
			Date:     start.AddDate(0, 0, day),
			Quantity: quantity,
		})
	}

	// The bundle is out of stock and blocked on COMP-001
	bundleRepo.AddBundle(entities.BundleInfo{
		BundleID:            "bundle_001",
		BundleName:          "Premium Widget Bundle",
		BlockingComponentID: "COMP-001",
		CurrentStock:        0,
	}, []entities.BundleComponent{
		{SKU: "COMP-001", QuantityRequired: 2, CurrentQuantity: 0},
		{SKU: "COMP-002", QuantityRequired: 1, CurrentQuantity: 40},
	})

	// A second bundle whose stored stock has drifted from its components
	bundleRepo.AddBundle(entities.BundleInfo{
		BundleID:     "bundle_002",
		BundleName:   "Starter Gadget Kit",
		CurrentStock: 12,
	}, []entities.BundleComponent{
		{SKU: "COMP-003", QuantityRequired: 1, CurrentQuantity: 9},
	})

	vendorRepo.SetPrimaryVendor("COMP-001", entities.PrimaryVendorTerms{
		VendorID:     "vendor_usual",
		UnitCost:     decimal.RequireFromString("12.25"),
		LeadTimeDays: 14,
	})
	vendorRepo.AddEmergencyVendor("COMP-001", entities.EmergencyVendor{
		VendorID:     "emergency_local_001",
		VendorName:   "Local Fast Supply Co",
		UnitCost:     decimal.RequireFromString("18.50"),
		LeadTimeDays: 3,
		Reliability:  0.95,
	})
	vendorRepo.AddEmergencyVendor("COMP-001", entities.EmergencyVendor{
		VendorID:     "emergency_regional_001",
		VendorName:   "Regional Supply Hub",
		UnitCost:     decimal.RequireFromString("15.75"),
		LeadTimeDays: 7,
		Reliability:  0.88,
	})
}
