// Package config provides runtime configuration for the replenishment
// engine.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every tunable knob of the engine. Zero values are never
// used directly; start from DefaultConfig and override via Load.
type Config struct {
	// Forecasting
	EMAAlpha           float64
	EMAWeight          float64
	MA7Weight          float64
	MA30Weight         float64
	AverageWeight      float64
	TrendAdjustmentCap float64
	AnomalyZThreshold  float64

	// Safety buffers by demand variability
	HighConfidenceBuffer   float64
	MediumConfidenceBuffer float64
	LowConfidenceBuffer    float64

	// Emergency sourcing
	MinimumMarginThreshold   string
	HighRiskConfidenceFloor  float64
	LowRiskConfidenceFloor   float64
	HighRiskLeadTimeDays     int
	LowRiskLeadTimeDays      int

	// Reconciliation
	ConstrainedLocationID string
	AlertThreshold        int
	DryRun                bool

	// Commerce platform
	ShopifyShopURL     string
	ShopifyAccessToken string
	ShopifyAPIVersion  string
}

// DefaultConfig returns the engine defaults
func DefaultConfig() *Config {
	return &Config{
		EMAAlpha:           0.3,
		EMAWeight:          0.4,
		MA7Weight:          0.3,
		MA30Weight:         0.2,
		AverageWeight:      0.1,
		TrendAdjustmentCap: 15.0,
		AnomalyZThreshold:  2.0,

		HighConfidenceBuffer:   1.05,
		MediumConfidenceBuffer: 1.10,
		LowConfidenceBuffer:    1.20,

		MinimumMarginThreshold:  "0.20",
		HighRiskConfidenceFloor: 0.75,
		LowRiskConfidenceFloor:  0.90,
		HighRiskLeadTimeDays:    18,
		LowRiskLeadTimeDays:     10,

		ConstrainedLocationID: "",
		AlertThreshold:        5,
		DryRun:                false,

		ShopifyShopURL:     "",
		ShopifyAccessToken: "",
		ShopifyAPIVersion:  "2024-10",
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatenv(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func intenv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Load reads a .env file if present, then collects configuration from
// the environment on top of the defaults. Malformed values fall back
// to their defaults.
func Load() *Config {
	_ = godotenv.Load()

	c := DefaultConfig()

	c.EMAAlpha = floatenv("FORECAST_EMA_ALPHA", c.EMAAlpha)
	c.AnomalyZThreshold = floatenv("FORECAST_ANOMALY_Z_THRESHOLD", c.AnomalyZThreshold)

	c.MinimumMarginThreshold = getenv("SOURCING_MIN_MARGIN_THRESHOLD", c.MinimumMarginThreshold)
	c.HighRiskConfidenceFloor = floatenv("SOURCING_HIGH_RISK_CONFIDENCE_FLOOR", c.HighRiskConfidenceFloor)
	c.LowRiskConfidenceFloor = floatenv("SOURCING_LOW_RISK_CONFIDENCE_FLOOR", c.LowRiskConfidenceFloor)
	c.HighRiskLeadTimeDays = intenv("SOURCING_HIGH_RISK_LEAD_DAYS", c.HighRiskLeadTimeDays)
	c.LowRiskLeadTimeDays = intenv("SOURCING_LOW_RISK_LEAD_DAYS", c.LowRiskLeadTimeDays)

	c.ConstrainedLocationID = getenv("RECONCILE_CONSTRAINED_LOCATION_ID", c.ConstrainedLocationID)
	c.AlertThreshold = intenv("RECONCILE_ALERT_THRESHOLD", c.AlertThreshold)
	c.DryRun = boolenv("RECONCILE_DRY_RUN", c.DryRun)

	c.ShopifyShopURL = getenv("SHOPIFY_SHOP_URL", c.ShopifyShopURL)
	c.ShopifyAccessToken = getenv("SHOPIFY_ACCESS_TOKEN", c.ShopifyAccessToken)
	c.ShopifyAPIVersion = getenv("SHOPIFY_API_VERSION", c.ShopifyAPIVersion)

	return c
}
