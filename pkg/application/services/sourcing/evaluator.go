package sourcing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

// EvaluationParams are the inputs to one emergency sourcing evaluation
type EvaluationParams struct {
	Bundle              entities.BundleInfo
	BlockingComponentID string
	PrimaryLeadTimeDays int
	PrimaryCost         decimal.Decimal
	BundleMargin        decimal.Decimal
	// DailyVelocity is the component's units/day, typically the
	// forecaster's daily forecast
	DailyVelocity float64
	// VelocityConfidence is the 0..1 statistical confidence in the
	// velocity input (see ConfidenceScore)
	VelocityConfidence float64
	// MinimumMarginThreshold is the minimum acceptable margin after
	// absorbing emergency costs
	MinimumMarginThreshold decimal.Decimal
	Vendors                []entities.EmergencyVendor
}

// Evaluator decides whether paying a costlier, faster vendor is
// economically justified versus waiting for the primary vendor. It is
// pure: every evaluation operates on its own snapshot of inputs.
type Evaluator struct {
	riskPolicy RiskPolicy
}

// NewEvaluator creates an evaluator with the given risk policy
func NewEvaluator(riskPolicy RiskPolicy) *Evaluator {
	return &Evaluator{riskPolicy: riskPolicy}
}

// Evaluate analyzes all candidate vendors for one stock-blocked bundle
// and distills them into a single recommendation with an approval card.
func (e *Evaluator) Evaluate(params EvaluationParams) (*entities.EmergencySourcingResult, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	opportunityCost := calculateOpportunityCost(
		params.DailyVelocity,
		params.PrimaryLeadTimeDays,
		params.BundleMargin,
	)

	options := make([]entities.EmergencySourcingOption, 0, len(params.Vendors))
	for _, vendor := range params.Vendors {
		options = append(options, e.analyzeVendor(vendor, params, opportunityCost))
	}

	recommendation := e.recommend(options, params)

	return &entities.EmergencySourcingResult{
		Bundle:          params.Bundle,
		OpportunityCost: opportunityCost,
		Options:         options,
		Recommendation:  recommendation,
		ApprovalCard:    BuildApprovalCard(params.Bundle, opportunityCost, options, recommendation),
	}, nil
}

// EvaluateBatch evaluates a list of bundles independently. There is no
// cross-bundle coupling: each result stands alone.
func (e *Evaluator) EvaluateBatch(batch []EvaluationParams) ([]*entities.EmergencySourcingResult, error) {
	results := make([]*entities.EmergencySourcingResult, 0, len(batch))
	for _, params := range batch {
		result, err := e.Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("bundle %s: %w", params.Bundle.BundleID, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func validateParams(params EvaluationParams) error {
	if params.Bundle.BundleID == "" {
		return fmt.Errorf("bundle ID cannot be empty")
	}
	if params.PrimaryLeadTimeDays <= 0 {
		return fmt.Errorf("primary lead time must be positive, got %d", params.PrimaryLeadTimeDays)
	}
	if params.DailyVelocity < 0 {
		return fmt.Errorf("daily velocity cannot be negative, got %f", params.DailyVelocity)
	}
	return nil
}

// calculateOpportunityCost computes the sales and profit forgone while
// waiting out the primary vendor's lead time
func calculateOpportunityCost(dailyVelocity float64, primaryLeadTimeDays int, bundleMargin decimal.Decimal) entities.OpportunityCost {
	feasibleSales := dailyVelocity * float64(primaryLeadTimeDays)
	expectedLostProfit := bundleMargin.Mul(decimal.NewFromFloat(feasibleSales))

	return entities.OpportunityCost{
		FeasibleSalesDuringLeadTime: feasibleSales,
		ExpectedLostProfit:          expectedLostProfit,
		BundleMargin:                bundleMargin,
		PrimaryLeadTimeDays:         primaryLeadTimeDays,
	}
}

// analyzeVendor computes the incremental economics of one emergency vendor
func (e *Evaluator) analyzeVendor(
	vendor entities.EmergencyVendor,
	params EvaluationParams,
	opportunityCost entities.OpportunityCost,
) entities.EmergencySourcingOption {
	feasibleSales := decimal.NewFromFloat(opportunityCost.FeasibleSalesDuringLeadTime)
	costDifference := vendor.UnitCost.Sub(params.PrimaryCost)

	incrementalCost := costDifference.Mul(feasibleSales)
	netBenefit := opportunityCost.ExpectedLostProfit.Sub(incrementalCost)

	// With no feasible sales there is nothing to amortize the premium
	// against, so the post-emergency margin collapses to zero
	marginAfterEmergency := decimal.Zero
	if feasibleSales.IsPositive() {
		marginAfterEmergency = params.BundleMargin.Sub(incrementalCost.Div(feasibleSales))
		if marginAfterEmergency.IsNegative() {
			marginAfterEmergency = decimal.Zero
		}
	}

	recommended := netBenefit.IsPositive() &&
		marginAfterEmergency.GreaterThanOrEqual(params.MinimumMarginThreshold)

	return entities.EmergencySourcingOption{
		VendorID:             vendor.VendorID,
		VendorName:           vendor.VendorName,
		Cost:                 vendor.UnitCost,
		LeadTimeDays:         vendor.LeadTimeDays,
		IncrementalCost:      incrementalCost,
		NetBenefit:           netBenefit,
		MarginAfterEmergency: marginAfterEmergency,
		Recommended:          recommended,
		Comparison: entities.OptionComparison{
			CostDifference:     costDifference,
			LeadTimeDifference: params.PrimaryLeadTimeDays - vendor.LeadTimeDays,
			ProfitImpact:       netBenefit,
		},
	}
}

// recommend distills the analyzed options into the single decision for
// this bundle. ApprovalRequired tracks ShouldProceed: a "do nothing"
// outcome needs no sign-off.
func (e *Evaluator) recommend(options []entities.EmergencySourcingOption, params EvaluationParams) entities.SourcingRecommendation {
	best := bestOption(options)
	if best == nil {
		return entities.SourcingRecommendation{
			ShouldProceed:    false,
			NetBenefit:       decimal.Zero,
			RiskLevel:        e.riskPolicy.Assess(decimal.Zero, params.VelocityConfidence, params.PrimaryLeadTimeDays),
			ApprovalRequired: false,
		}
	}

	return entities.SourcingRecommendation{
		ShouldProceed:       true,
		RecommendedVendorID: best.VendorID,
		NetBenefit:          best.NetBenefit,
		RiskLevel:           e.riskPolicy.Assess(best.NetBenefit, params.VelocityConfidence, best.LeadTimeDays),
		ApprovalRequired:    true,
	}
}

// bestOption returns the recommended option with the highest net
// benefit, ties broken by shortest lead time, or nil when none qualify
func bestOption(options []entities.EmergencySourcingOption) *entities.EmergencySourcingOption {
	var recommended []entities.EmergencySourcingOption
	for _, option := range options {
		if option.Recommended {
			recommended = append(recommended, option)
		}
	}
	if len(recommended) == 0 {
		return nil
	}

	sort.SliceStable(recommended, func(i, j int) bool {
		if !recommended[i].NetBenefit.Equal(recommended[j].NetBenefit) {
			return recommended[i].NetBenefit.GreaterThan(recommended[j].NetBenefit)
		}
		return recommended[i].LeadTimeDays < recommended[j].LeadTimeDays
	})
	return &recommended[0]
}
