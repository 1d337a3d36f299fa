package sourcing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

// BuildApprovalCard renders a sourcing recommendation into a
// human-readable card for operator review. The card is an artifact
// only: applying it is the responsibility of an external approval
// workflow, never of this engine.
func BuildApprovalCard(
	bundle entities.BundleInfo,
	opportunityCost entities.OpportunityCost,
	options []entities.EmergencySourcingOption,
	recommendation entities.SourcingRecommendation,
) entities.ApprovalCard {
	if !recommendation.ShouldProceed {
		return entities.ApprovalCard{
			Title: "Emergency Sourcing Not Recommended",
			Summary: fmt.Sprintf(
				"Emergency sourcing for %s is not economically justified by the cost/benefit analysis.",
				bundle.BundleName),
			FinancialImpact:  decimal.Zero,
			TimelineImpact:   0,
			RiskAssessment:   "Low risk - no action required",
			Recommendation:   "Continue with the primary vendor timeline",
			RequiresApproval: false,
		}
	}

	recommended := findOption(options, recommendation.RecommendedVendorID)
	timelineImpact := opportunityCost.PrimaryLeadTimeDays - recommended.LeadTimeDays

	return entities.ApprovalCard{
		Title: "Emergency Sourcing Recommendation",
		Summary: fmt.Sprintf(
			"Blocked bundle %s (blocking component %s) can be unblocked with emergency sourcing from %s. Expected net benefit: $%s.",
			bundle.BundleName, bundle.BlockingComponentID, recommended.VendorName,
			recommendation.NetBenefit.StringFixed(2)),
		FinancialImpact: recommendation.NetBenefit,
		TimelineImpact:  timelineImpact,
		RiskAssessment:  riskAssessmentText(recommendation.RiskLevel),
		Recommendation: fmt.Sprintf(
			"Proceed with %s for emergency sourcing. Net benefit: $%s, timeline improvement: %d days.",
			recommended.VendorName, recommendation.NetBenefit.StringFixed(2), timelineImpact),
		RequiresApproval: true,
	}
}

func findOption(options []entities.EmergencySourcingOption, vendorID string) entities.EmergencySourcingOption {
	for _, option := range options {
		if option.VendorID == vendorID {
			return option
		}
	}
	return entities.EmergencySourcingOption{}
}

func riskAssessmentText(level entities.RiskLevel) string {
	if level == entities.RiskHigh {
		return fmt.Sprintf("Risk level: %s. High risk due to payoff, confidence, or lead-time factors.", level)
	}
	return fmt.Sprintf("Risk level: %s. Acceptable risk level for emergency sourcing.", level)
}
