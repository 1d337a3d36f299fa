package sourcing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

func blockedBundle() entities.BundleInfo {
	return entities.BundleInfo{
		BundleID:            "bundle_001",
		BundleName:          "Premium Widget Bundle",
		BlockingComponentID: "COMP-001",
		CurrentStock:        0,
		DaysUntilStockout:   0,
	}
}

func baseParams(vendors ...entities.EmergencyVendor) EvaluationParams {
	return EvaluationParams{
		Bundle:                 blockedBundle(),
		BlockingComponentID:    "COMP-001",
		PrimaryLeadTimeDays:    14,
		PrimaryCost:            decimal.RequireFromString("12.25"),
		BundleMargin:           decimal.RequireFromString("25.50"),
		DailyVelocity:          5.0,
		VelocityConfidence:     0.95,
		MinimumMarginThreshold: decimal.RequireFromString("0.20"),
		Vendors:                vendors,
	}
}

func TestEvaluator_OpportunityCost(t *testing.T) {
	e := NewEvaluator(DefaultRiskPolicy())

	result, err := e.Evaluate(baseParams())
	require.NoError(t, err)

	// velocity 5.0 over 14 days at margin 25.50
	assert.Equal(t, 70.0, result.OpportunityCost.FeasibleSalesDuringLeadTime)
	assert.Equal(t, "1785.00", result.OpportunityCost.ExpectedLostProfit.StringFixed(2))
	assert.Equal(t, 14, result.OpportunityCost.PrimaryLeadTimeDays)
}

func TestEvaluator_IncrementalCost(t *testing.T) {
	e := NewEvaluator(DefaultRiskPolicy())

	params := baseParams(entities.EmergencyVendor{
		VendorID:     "emergency_local_001",
		VendorName:   "Local Fast Supply Co",
		UnitCost:     decimal.RequireFromString("18.50"),
		LeadTimeDays: 3,
		Reliability:  0.95,
	})
	// 50 feasible sales: velocity 5.0 over 10 days
	params.PrimaryLeadTimeDays = 10

	result, err := e.Evaluate(params)
	require.NoError(t, err)
	require.Len(t, result.Options, 1)

	option := result.Options[0]
	// (18.50 - 12.25) * 50
	assert.Equal(t, "312.50", option.IncrementalCost.StringFixed(2))
	// ELP 1275.00 - IC 312.50
	assert.Equal(t, "962.50", option.NetBenefit.StringFixed(2))
	// 25.50 - 312.50/50
	assert.Equal(t, "19.25", option.MarginAfterEmergency.StringFixed(2))
	assert.True(t, option.Recommended)

	assert.Equal(t, "6.25", option.Comparison.CostDifference.StringFixed(2))
	assert.Equal(t, 7, option.Comparison.LeadTimeDifference)
	assert.True(t, option.Comparison.ProfitImpact.Equal(option.NetBenefit))
}

func TestEvaluator_ZeroVelocityNeverProceeds(t *testing.T) {
	e := NewEvaluator(DefaultRiskPolicy())

	params := baseParams(
		entities.EmergencyVendor{VendorID: "v1", VendorName: "Free Vendor", UnitCost: decimal.Zero, LeadTimeDays: 1, Reliability: 1.0},
		entities.EmergencyVendor{VendorID: "v2", VendorName: "Cheap Vendor", UnitCost: decimal.RequireFromString("1.00"), LeadTimeDays: 2, Reliability: 1.0},
	)
	params.DailyVelocity = 0

	result, err := e.Evaluate(params)
	require.NoError(t, err)

	assert.True(t, result.OpportunityCost.ExpectedLostProfit.IsZero())
	assert.False(t, result.Recommendation.ShouldProceed)
	assert.False(t, result.Recommendation.ApprovalRequired)
	assert.True(t, result.Recommendation.NetBenefit.IsZero())
	for _, option := range result.Options {
		assert.False(t, option.Recommended)
		assert.True(t, option.MarginAfterEmergency.IsZero())
	}
}

func TestEvaluator_CheaperVendorBeatsWaiting(t *testing.T) {
	e := NewEvaluator(DefaultRiskPolicy())

	params := baseParams(entities.EmergencyVendor{
		VendorID:     "emergency_regional_001",
		VendorName:   "Regional Supply Hub",
		UnitCost:     decimal.RequireFromString("10.00"), // below the primary's 12.25
		LeadTimeDays: 5,
		Reliability:  0.92,
	})

	result, err := e.Evaluate(params)
	require.NoError(t, err)
	require.Len(t, result.Options, 1)

	option := result.Options[0]
	assert.True(t, option.IncrementalCost.IsNegative())
	assert.True(t, option.NetBenefit.GreaterThan(result.OpportunityCost.ExpectedLostProfit))
	assert.True(t, option.Recommended)
}

func TestEvaluator_BestOptionSelection(t *testing.T) {
	e := NewEvaluator(DefaultRiskPolicy())

	params := baseParams(
		entities.EmergencyVendor{VendorID: "slow_cheap", VendorName: "Slow Cheap", UnitCost: decimal.RequireFromString("14.00"), LeadTimeDays: 6, Reliability: 0.9},
		entities.EmergencyVendor{VendorID: "fast_pricey", VendorName: "Fast Pricey", UnitCost: decimal.RequireFromString("20.00"), LeadTimeDays: 2, Reliability: 0.9},
	)

	result, err := e.Evaluate(params)
	require.NoError(t, err)

	// The cheaper vendor has the smaller incremental cost and so the
	// higher net benefit
	assert.True(t, result.Recommendation.ShouldProceed)
	assert.Equal(t, "slow_cheap", result.Recommendation.RecommendedVendorID)
	assert.True(t, result.Recommendation.ApprovalRequired)
}

func TestEvaluator_TieBrokenByShorterLeadTime(t *testing.T) {
	e := NewEvaluator(DefaultRiskPolicy())

	params := baseParams(
		entities.EmergencyVendor{VendorID: "tie_slow", VendorName: "Tie Slow", UnitCost: decimal.RequireFromString("15.00"), LeadTimeDays: 8, Reliability: 0.9},
		entities.EmergencyVendor{VendorID: "tie_fast", VendorName: "Tie Fast", UnitCost: decimal.RequireFromString("15.00"), LeadTimeDays: 3, Reliability: 0.9},
	)

	result, err := e.Evaluate(params)
	require.NoError(t, err)

	assert.Equal(t, "tie_fast", result.Recommendation.RecommendedVendorID)
}

func TestEvaluator_MarginThresholdBlocksThinDeals(t *testing.T) {
	e := NewEvaluator(DefaultRiskPolicy())

	// Premium eats nearly the whole margin: net benefit stays positive
	// but the post-emergency margin falls below the threshold
	params := baseParams(entities.EmergencyVendor{
		VendorID:     "premium",
		VendorName:   "Premium Emergency Supply",
		UnitCost:     decimal.RequireFromString("37.70"), // margin after: 25.50 - 25.45 = 0.05
		LeadTimeDays: 1,
		Reliability:  0.98,
	})

	result, err := e.Evaluate(params)
	require.NoError(t, err)
	require.Len(t, result.Options, 1)

	assert.True(t, result.Options[0].NetBenefit.IsPositive())
	assert.False(t, result.Options[0].Recommended)
	assert.False(t, result.Recommendation.ShouldProceed)
}

func TestEvaluator_NoProceedCardNeedsNoApproval(t *testing.T) {
	e := NewEvaluator(DefaultRiskPolicy())

	result, err := e.Evaluate(baseParams())
	require.NoError(t, err)

	assert.Equal(t, "Emergency Sourcing Not Recommended", result.ApprovalCard.Title)
	assert.False(t, result.ApprovalCard.RequiresApproval)
	assert.True(t, result.ApprovalCard.FinancialImpact.IsZero())
}

func TestEvaluator_ProceedCardCarriesImpact(t *testing.T) {
	e := NewEvaluator(DefaultRiskPolicy())

	params := baseParams(entities.EmergencyVendor{
		VendorID:     "emergency_local_001",
		VendorName:   "Local Fast Supply Co",
		UnitCost:     decimal.RequireFromString("18.50"),
		LeadTimeDays: 3,
		Reliability:  0.95,
	})

	result, err := e.Evaluate(params)
	require.NoError(t, err)

	card := result.ApprovalCard
	assert.Equal(t, "Emergency Sourcing Recommendation", card.Title)
	assert.True(t, card.RequiresApproval)
	assert.True(t, card.FinancialImpact.Equal(result.Recommendation.NetBenefit))
	assert.Equal(t, 11, card.TimelineImpact) // 14 - 3 days
	assert.Contains(t, card.Summary, "Premium Widget Bundle")
	assert.Contains(t, card.Summary, "COMP-001")
	assert.Contains(t, card.Summary, "Local Fast Supply Co")
}

func TestEvaluator_ParamValidation(t *testing.T) {
	e := NewEvaluator(DefaultRiskPolicy())

	testCases := []struct {
		name   string
		mutate func(*EvaluationParams)
	}{
		{"empty bundle ID", func(p *EvaluationParams) { p.Bundle.BundleID = "" }},
		{"zero lead time", func(p *EvaluationParams) { p.PrimaryLeadTimeDays = 0 }},
		{"negative velocity", func(p *EvaluationParams) { p.DailyVelocity = -1 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := baseParams()
			tc.mutate(&params)
			_, err := e.Evaluate(params)
			assert.Error(t, err)
		})
	}
}

func TestEvaluator_EvaluateBatch(t *testing.T) {
	e := NewEvaluator(DefaultRiskPolicy())

	second := baseParams()
	second.Bundle.BundleID = "bundle_002"
	second.DailyVelocity = 0

	results, err := e.EvaluateBatch([]EvaluationParams{baseParams(), second})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "bundle_001", results[0].Bundle.BundleID)
	assert.Equal(t, "bundle_002", results[1].Bundle.BundleID)
	assert.False(t, results[1].Recommendation.ShouldProceed)
}
