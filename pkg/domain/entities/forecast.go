package entities

// TrendDirection classifies the direction of a demand time series
type TrendDirection string

const (
	TrendGrowing   TrendDirection = "growing"
	TrendStable    TrendDirection = "stable"
	TrendDeclining TrendDirection = "declining"
)

// ConfidenceLevel classifies how much trust a forecast deserves,
// derived from the variability of the underlying series
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ForecastAnalysis carries the intermediate signals used to derive a forecast
type ForecastAnalysis struct {
	HistoricalAvg          float64
	RecentAvg7d            float64
	RecentAvg30d           float64
	TrendCoefficient       float64
	VariabilityCoefficient float64
}

// DemandForecast is the per-SKU result of a 30-day demand forecast.
// Created fresh on every forecast call and never mutated.
type DemandForecast struct {
	SKU                   SKU
	Forecast30d           int
	DailyForecast         float64
	Confidence            ConfidenceLevel
	Trend                 TrendDirection
	RecommendedReorderQty int
	Analysis              ForecastAnalysis
}

// ForecastSummary aggregates counts over a set of forecasts
type ForecastSummary struct {
	TotalForecastedDemand int
	HighConfidenceCount   int
	MediumConfidenceCount int
	LowConfidenceCount    int
	GrowingTrendCount     int
	StableTrendCount      int
	DecliningTrendCount   int
}
