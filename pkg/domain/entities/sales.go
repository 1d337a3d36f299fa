package entities

import (
	"fmt"
	"sort"
	"time"
)

// SKU represents a unique stock keeping unit identifier
type SKU string

// HistoricalSalesPoint represents one day of sales history for a SKU
type HistoricalSalesPoint struct {
	Date     time.Time
	Quantity int
}

// NewHistoricalSalesPoint creates a validated HistoricalSalesPoint
func NewHistoricalSalesPoint(date time.Time, quantity int) (*HistoricalSalesPoint, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("sales point date cannot be zero")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("sales quantity cannot be negative, got %d", quantity)
	}

	return &HistoricalSalesPoint{
		Date:     date,
		Quantity: quantity,
	}, nil
}

// SortSalesHistory returns a copy of the history sorted ascending by date
func SortSalesHistory(history []HistoricalSalesPoint) []HistoricalSalesPoint {
	sorted := make([]HistoricalSalesPoint, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
