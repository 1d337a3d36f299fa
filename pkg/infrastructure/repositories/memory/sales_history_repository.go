package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/domain/repositories"
)

// SalesHistoryRepository provides in-memory per-SKU sales history.
// Safe for concurrent use.
type SalesHistoryRepository struct {
	history map[entities.SKU][]entities.HistoricalSalesPoint
	mutex   sync.RWMutex
}

// NewSalesHistoryRepository creates a new in-memory sales history repository
func NewSalesHistoryRepository() *SalesHistoryRepository {
	return &SalesHistoryRepository{
		history: make(map[entities.SKU][]entities.HistoricalSalesPoint),
	}
}

// Verify interface compliance
var _ repositories.SalesHistoryRepository = (*SalesHistoryRepository)(nil)

// LoadSalesHistory loads sales history for multiple SKUs
func (r *SalesHistoryRepository) LoadSalesHistory(history map[entities.SKU][]entities.HistoricalSalesPoint) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for sku, points := range history {
		r.history[sku] = append(r.history[sku], points...)
	}
	return nil
}

// AddSalesPoint appends one daily observation for a SKU
func (r *SalesHistoryRepository) AddSalesPoint(sku entities.SKU, point entities.HistoricalSalesPoint) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.history[sku] = append(r.history[sku], point)
}

// GetSalesHistory returns the sales history for a SKU
func (r *SalesHistoryRepository) GetSalesHistory(ctx context.Context, sku entities.SKU) ([]entities.HistoricalSalesPoint, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	points, exists := r.history[sku]
	if !exists {
		return nil, fmt.Errorf("sales history not found: %s", sku)
	}
	return points, nil
}
