package forecast

import (
	"context"
	"fmt"

	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/domain/repositories"
)

// Service wires the forecaster to a sales history source
type Service struct {
	forecaster *Forecaster
	sales      repositories.SalesHistoryRepository
}

// NewService creates a forecast service
func NewService(forecaster *Forecaster, sales repositories.SalesHistoryRepository) *Service {
	return &Service{
		forecaster: forecaster,
		sales:      sales,
	}
}

// ForecastSKU fetches a SKU's sales history and generates its forecast
func (s *Service) ForecastSKU(ctx context.Context, sku entities.SKU) (*entities.DemandForecast, error) {
	history, err := s.sales.GetSalesHistory(ctx, sku)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales history for %s: %w", sku, err)
	}
	return s.forecaster.Generate(sku, history)
}

// ForecastSKUs generates forecasts for multiple SKUs and a summary over
// the successful ones. A SKU whose history cannot be loaded fails the
// whole call; forecasting itself is pure and does not partially fail.
func (s *Service) ForecastSKUs(ctx context.Context, skus []entities.SKU) ([]*entities.DemandForecast, entities.ForecastSummary, error) {
	forecasts := make([]*entities.DemandForecast, 0, len(skus))
	for _, sku := range skus {
		forecast, err := s.ForecastSKU(ctx, sku)
		if err != nil {
			return nil, entities.ForecastSummary{}, err
		}
		forecasts = append(forecasts, forecast)
	}
	return forecasts, Summarize(forecasts), nil
}

// DetectSKUAnomalies fetches a SKU's sales history and flags anomalous points
func (s *Service) DetectSKUAnomalies(ctx context.Context, sku entities.SKU, zThreshold float64) ([]entities.HistoricalSalesPoint, error) {
	history, err := s.sales.GetSalesHistory(ctx, sku)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales history for %s: %w", sku, err)
	}
	return s.forecaster.DetectAnomalies(history, zThreshold), nil
}
