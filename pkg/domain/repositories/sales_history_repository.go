package repositories

import (
	"context"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

// SalesHistoryRepository provides access to per-SKU daily sales history
type SalesHistoryRepository interface {
	GetSalesHistory(ctx context.Context, sku entities.SKU) ([]entities.HistoricalSalesPoint, error)
}
