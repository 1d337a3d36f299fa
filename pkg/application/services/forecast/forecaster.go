package forecast

import (
	"errors"
	"fmt"
	"math"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

// ErrInsufficientData is returned when a forecast is requested for an
// empty sales history.
var ErrInsufficientData = errors.New("insufficient sales history for forecasting")

// Config holds the tunable parameters of the forecaster
type Config struct {
	// EMAAlpha is the exponential smoothing factor (0-1, higher = more
	// weight to recent observations)
	EMAAlpha float64

	// Blend weights for the daily forecast. They should sum to 1.
	WeightEMA        float64
	WeightMA7        float64
	WeightMA30       float64
	WeightHistorical float64

	// TrendThresholdRatio scales the trend classification threshold:
	// a slope within ±ratio·avg is considered stable
	TrendThresholdRatio float64

	// Coefficient-of-variation cutoffs for confidence classification
	HighConfidenceCV   float64
	MediumConfidenceCV float64

	// Reorder buffer multipliers per confidence level
	BufferLow    float64
	BufferMedium float64
	BufferHigh   float64

	// HorizonDays is the forecast horizon
	HorizonDays int
}

// DefaultConfig returns the reference forecaster configuration
func DefaultConfig() Config {
	return Config{
		EMAAlpha:            0.3,
		WeightEMA:           0.4,
		WeightMA7:           0.3,
		WeightMA30:          0.2,
		WeightHistorical:    0.1,
		TrendThresholdRatio: 0.05,
		HighConfidenceCV:    0.15,
		MediumConfidenceCV:  0.30,
		BufferLow:           1.20,
		BufferMedium:        1.10,
		BufferHigh:          1.05,
		HorizonDays:         30,
	}
}

// Forecaster turns historical daily sales into demand forecasts. It is
// a pure function of its inputs and carries no mutable state.
type Forecaster struct {
	config Config
}

// NewForecaster creates a forecaster with the given configuration
func NewForecaster(config Config) *Forecaster {
	return &Forecaster{config: config}
}

// Generate produces a demand forecast for a SKU from its sales history.
// The history is re-sorted ascending by date before use. An empty
// history yields ErrInsufficientData.
func (f *Forecaster) Generate(sku entities.SKU, history []entities.HistoricalSalesPoint) (*entities.DemandForecast, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("forecast for %s: %w", sku, ErrInsufficientData)
	}

	sorted := entities.SortSalesHistory(history)
	quantities := make([]float64, len(sorted))
	for i, point := range sorted {
		quantities[i] = float64(point.Quantity)
	}

	historicalAvg := mean(quantities)
	recent7dAvg := movingAverage(quantities, 7)
	recent30dAvg := movingAverage(quantities, 30)
	ema := exponentialMovingAverage(quantities, f.config.EMAAlpha)

	slope := trendCoefficient(quantities)
	trend := f.classifyTrend(slope, historicalAvg)

	variability := variabilityCoefficient(quantities)
	confidence := f.classifyConfidence(variability)

	daily := f.config.WeightEMA*ema +
		f.config.WeightMA7*recent7dAvg +
		f.config.WeightMA30*recent30dAvg +
		f.config.WeightHistorical*historicalAvg

	// Project the trend to the midpoint of the horizon
	daily += slope * float64(f.config.HorizonDays) / 2
	daily = math.Max(0, daily)

	forecast30d := int(math.Round(daily * float64(f.config.HorizonDays)))
	reorderQty := int(math.Ceil(float64(forecast30d) * f.bufferMultiplier(confidence)))

	return &entities.DemandForecast{
		SKU:                   sku,
		Forecast30d:           forecast30d,
		DailyForecast:         round2(daily),
		Confidence:            confidence,
		Trend:                 trend,
		RecommendedReorderQty: reorderQty,
		Analysis: entities.ForecastAnalysis{
			HistoricalAvg:          round2(historicalAvg),
			RecentAvg7d:            round2(recent7dAvg),
			RecentAvg30d:           round2(recent30dAvg),
			TrendCoefficient:       round3(slope),
			VariabilityCoefficient: round3(variability),
		},
	}, nil
}

// classifyTrend labels the slope relative to the series average
func (f *Forecaster) classifyTrend(coefficient, avg float64) entities.TrendDirection {
	threshold := avg * f.config.TrendThresholdRatio
	switch {
	case coefficient > threshold:
		return entities.TrendGrowing
	case coefficient < -threshold:
		return entities.TrendDeclining
	default:
		return entities.TrendStable
	}
}

// classifyConfidence maps demand variability to a confidence label
func (f *Forecaster) classifyConfidence(variability float64) entities.ConfidenceLevel {
	switch {
	case variability < f.config.HighConfidenceCV:
		return entities.ConfidenceHigh
	case variability < f.config.MediumConfidenceCV:
		return entities.ConfidenceMedium
	default:
		return entities.ConfidenceLow
	}
}

// bufferMultiplier returns the reorder safety buffer for a confidence
// level. Lower confidence is compensated by a larger buffer.
func (f *Forecaster) bufferMultiplier(confidence entities.ConfidenceLevel) float64 {
	switch confidence {
	case entities.ConfidenceLow:
		return f.config.BufferLow
	case entities.ConfidenceMedium:
		return f.config.BufferMedium
	default:
		return f.config.BufferHigh
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// movingAverage computes the average of the last window values. The
// window shrinks to the available length rather than failing.
func movingAverage(values []float64, window int) float64 {
	if len(values) == 0 {
		return 0
	}
	if len(values) < window {
		window = len(values)
	}
	return mean(values[len(values)-window:])
}

// exponentialMovingAverage is seeded with the first observation and
// updated as ema = alpha*x + (1-alpha)*ema
func exponentialMovingAverage(values []float64, alpha float64) float64 {
	if len(values) == 0 {
		return 0
	}
	ema := values[0]
	for _, v := range values[1:] {
		ema = alpha*v + (1-alpha)*ema
	}
	return ema
}

// trendCoefficient is the ordinary least-squares slope of quantity
// against time index
func trendCoefficient(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	n := float64(len(values))
	xMean := (n - 1) / 2
	yMean := mean(values)

	var numerator, denominator float64
	for i, y := range values {
		dx := float64(i) - xMean
		numerator += dx * (y - yMean)
		denominator += dx * dx
	}
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// variabilityCoefficient is the population standard deviation divided
// by the mean (coefficient of variation)
func variabilityCoefficient(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	if m == 0 {
		return 0
	}
	return stddev(values, m) / m
}

func stddev(values []float64, m float64) float64 {
	var sumSquares float64
	for _, v := range values {
		d := v - m
		sumSquares += d * d
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
