package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, 0.3, c.EMAAlpha)
	// Blend weights sum to one
	assert.InDelta(t, 1.0, c.EMAWeight+c.MA7Weight+c.MA30Weight+c.AverageWeight, 1e-9)
	assert.Equal(t, "0.20", c.MinimumMarginThreshold)
	assert.Equal(t, 5, c.AlertThreshold)
	assert.False(t, c.DryRun)
	assert.Equal(t, "2024-10", c.ShopifyAPIVersion)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("FORECAST_EMA_ALPHA", "0.5")
	t.Setenv("SOURCING_MIN_MARGIN_THRESHOLD", "0.35")
	t.Setenv("RECONCILE_CONSTRAINED_LOCATION_ID", "loc_warehouse_b")
	t.Setenv("RECONCILE_ALERT_THRESHOLD", "10")
	t.Setenv("RECONCILE_DRY_RUN", "true")

	c := Load()

	assert.Equal(t, 0.5, c.EMAAlpha)
	assert.Equal(t, "0.35", c.MinimumMarginThreshold)
	assert.Equal(t, "loc_warehouse_b", c.ConstrainedLocationID)
	assert.Equal(t, 10, c.AlertThreshold)
	assert.True(t, c.DryRun)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("FORECAST_EMA_ALPHA", "not-a-number")
	t.Setenv("RECONCILE_ALERT_THRESHOLD", "lots")
	t.Setenv("RECONCILE_DRY_RUN", "maybe")

	c := Load()

	assert.Equal(t, 0.3, c.EMAAlpha)
	assert.Equal(t, 5, c.AlertThreshold)
	assert.False(t, c.DryRun)
}
