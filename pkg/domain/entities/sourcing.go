package entities

import "github.com/shopspring/decimal"

// RiskLevel rates how likely an emergency sourcing recommendation is to
// be wrong
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// OpportunityCost quantifies what waiting on the primary vendor costs.
// Derived per evaluation, never stored.
type OpportunityCost struct {
	FeasibleSalesDuringLeadTime float64
	ExpectedLostProfit          decimal.Decimal
	BundleMargin                decimal.Decimal
	PrimaryLeadTimeDays         int
}

// OptionComparison contrasts an emergency vendor against the primary vendor
type OptionComparison struct {
	CostDifference     decimal.Decimal
	LeadTimeDifference int
	ProfitImpact       decimal.Decimal
}

// EmergencySourcingOption is the analyzed economics of one alternate vendor
type EmergencySourcingOption struct {
	VendorID             string
	VendorName           string
	Cost                 decimal.Decimal
	LeadTimeDays         int
	IncrementalCost      decimal.Decimal
	NetBenefit           decimal.Decimal
	MarginAfterEmergency decimal.Decimal
	Recommended          bool
	Comparison           OptionComparison
}

// SourcingRecommendation is the single decision distilled from all
// emergency sourcing options for one bundle
type SourcingRecommendation struct {
	ShouldProceed       bool
	RecommendedVendorID string
	NetBenefit          decimal.Decimal
	RiskLevel           RiskLevel
	ApprovalRequired    bool
}

// ApprovalCard is a human-readable summary of a sourcing recommendation,
// built for operator review. It is a presentation artifact only and is
// never applied by the engine itself.
type ApprovalCard struct {
	Title            string
	Summary          string
	FinancialImpact  decimal.Decimal
	TimelineImpact   int
	RiskAssessment   string
	Recommendation   string
	RequiresApproval bool
}

// EmergencySourcingResult is the full outcome of evaluating emergency
// sourcing for one stock-blocked bundle
type EmergencySourcingResult struct {
	Bundle          BundleInfo
	OpportunityCost OpportunityCost
	Options         []EmergencySourcingOption
	Recommendation  SourcingRecommendation
	ApprovalCard    ApprovalCard
}
