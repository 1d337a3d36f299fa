package forecast

import "github.com/vsinha/replenish/pkg/domain/entities"

// Summarize aggregates counts over a set of forecasts
func Summarize(forecasts []*entities.DemandForecast) entities.ForecastSummary {
	var summary entities.ForecastSummary

	for _, f := range forecasts {
		summary.TotalForecastedDemand += f.Forecast30d

		switch f.Confidence {
		case entities.ConfidenceHigh:
			summary.HighConfidenceCount++
		case entities.ConfidenceMedium:
			summary.MediumConfidenceCount++
		case entities.ConfidenceLow:
			summary.LowConfidenceCount++
		}

		switch f.Trend {
		case entities.TrendGrowing:
			summary.GrowingTrendCount++
		case entities.TrendStable:
			summary.StableTrendCount++
		case entities.TrendDeclining:
			summary.DecliningTrendCount++
		}
	}

	return summary
}
