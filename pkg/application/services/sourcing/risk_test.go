package sourcing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

func TestRiskPolicy_Assess(t *testing.T) {
	policy := DefaultRiskPolicy()

	testCases := []struct {
		name         string
		netBenefit   string
		confidence   float64
		leadTimeDays int
		expected     entities.RiskLevel
	}{
		{"negative benefit is always high", "-100.00", 0.99, 2, entities.RiskHigh},
		{"zero benefit is always high", "0.00", 0.99, 2, entities.RiskHigh},
		{"low confidence is high", "500.00", 0.70, 2, entities.RiskHigh},
		{"long lead time is high", "500.00", 0.99, 19, entities.RiskHigh},
		{"moderate confidence is medium", "500.00", 0.85, 2, entities.RiskMedium},
		{"moderate lead time is medium", "500.00", 0.99, 11, entities.RiskMedium},
		{"confident fast positive deal is low", "500.00", 0.95, 10, entities.RiskLow},
		{"boundary confidence exactly at floor", "500.00", 0.90, 5, entities.RiskLow},
		{"boundary lead time exactly at cutoff", "500.00", 0.95, 18, entities.RiskMedium},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := policy.Assess(decimal.RequireFromString(tc.netBenefit), tc.confidence, tc.leadTimeDays)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestRiskPolicy_MonotonicInNetBenefit(t *testing.T) {
	policy := DefaultRiskPolicy()

	// Holding confidence and lead time at their safest values, driving
	// net benefit to zero or below must always yield high
	for _, benefit := range []string{"0.00", "-0.01", "-1000.00"} {
		got := policy.Assess(decimal.RequireFromString(benefit), 0.99, 1)
		assert.Equal(t, entities.RiskHigh, got, "net benefit %s", benefit)
	}

	// And any positive benefit with top confidence and short lead time
	// must always yield low
	for _, benefit := range []string{"0.01", "10.00", "99999.00"} {
		got := policy.Assess(decimal.RequireFromString(benefit), 0.95, 5)
		assert.Equal(t, entities.RiskLow, got, "net benefit %s", benefit)
	}
}

func TestConfidenceScore(t *testing.T) {
	assert.Equal(t, 0.95, ConfidenceScore(entities.ConfidenceHigh))
	assert.Equal(t, 0.85, ConfidenceScore(entities.ConfidenceMedium))
	assert.Equal(t, 0.60, ConfidenceScore(entities.ConfidenceLow))
}
