package sourcing

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

// RiskPolicy holds the cutoffs used to rate a sourcing recommendation.
// The defaults are conservative: a negative expected payoff, low
// statistical confidence in the velocity input, or a long remaining
// lead time each independently downgrade the rating.
type RiskPolicy struct {
	// Below this confidence the recommendation is rated high risk
	HighRiskConfidenceFloor float64
	// Below this confidence (but above the high-risk floor) the
	// recommendation is rated medium risk
	LowRiskConfidenceFloor float64
	// Above this many remaining lead-time days the recommendation is
	// rated high risk
	HighRiskLeadTimeDays int
	// Above this many remaining lead-time days (but at or below the
	// high-risk cutoff) the recommendation is rated medium risk
	LowRiskLeadTimeDays int
}

// DefaultRiskPolicy returns the reference risk cutoffs
func DefaultRiskPolicy() RiskPolicy {
	return RiskPolicy{
		HighRiskConfidenceFloor: 0.75,
		LowRiskConfidenceFloor:  0.90,
		HighRiskLeadTimeDays:    18,
		LowRiskLeadTimeDays:     10,
	}
}

// Assess rates the risk of acting on a recommendation with the given
// net benefit, velocity confidence, and remaining lead time
func (p RiskPolicy) Assess(netBenefit decimal.Decimal, confidence float64, leadTimeDays int) entities.RiskLevel {
	if netBenefit.LessThanOrEqual(decimal.Zero) ||
		confidence < p.HighRiskConfidenceFloor ||
		leadTimeDays > p.HighRiskLeadTimeDays {
		return entities.RiskHigh
	}
	if confidence < p.LowRiskConfidenceFloor || leadTimeDays > p.LowRiskLeadTimeDays {
		return entities.RiskMedium
	}
	return entities.RiskLow
}

// ConfidenceScore maps a forecast confidence label to the 0..1 score
// the risk policy expects, so forecaster output plugs straight into an
// evaluation.
func ConfidenceScore(level entities.ConfidenceLevel) float64 {
	switch level {
	case entities.ConfidenceHigh:
		return 0.95
	case entities.ConfidenceMedium:
		return 0.85
	default:
		return 0.60
	}
}
