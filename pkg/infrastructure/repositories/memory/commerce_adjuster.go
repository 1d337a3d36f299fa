package memory

import (
	"context"
	"sync"

	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/domain/repositories"
)

// CommerceAdjuster records inventory adjustments in memory instead of
// calling a commerce platform. Useful for examples and dry wiring.
type CommerceAdjuster struct {
	Adjustments    []entities.InventoryAdjustment
	ZeroedLocation string
	VariantCount   int

	adjustErr error
	zeroErr   error
	mutex     sync.Mutex
}

// NewCommerceAdjuster creates an in-memory commerce adjuster that zeroes
// the given number of variants per location
func NewCommerceAdjuster(variantCount int) *CommerceAdjuster {
	return &CommerceAdjuster{VariantCount: variantCount}
}

// Verify interface compliance
var _ repositories.CommerceAdjuster = (*CommerceAdjuster)(nil)

// SetAdjustmentError makes AdjustInventory fail as a batch
func (a *CommerceAdjuster) SetAdjustmentError(err error) {
	a.adjustErr = err
}

// SetZeroAvailabilityError makes EnforceZeroAvailability fail
func (a *CommerceAdjuster) SetZeroAvailabilityError(err error) {
	a.zeroErr = err
}

// AdjustInventory records the adjustments and reports every item applied
func (a *CommerceAdjuster) AdjustInventory(ctx context.Context, adjustments []entities.InventoryAdjustment) ([]entities.AdjustmentResult, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.adjustErr != nil {
		return nil, a.adjustErr
	}

	a.Adjustments = append(a.Adjustments, adjustments...)

	results := make([]entities.AdjustmentResult, 0, len(adjustments))
	for _, adj := range adjustments {
		results = append(results, entities.AdjustmentResult{
			BundleID:  adj.BundleID,
			VariantID: adj.VariantID,
			Applied:   true,
		})
	}
	return results, nil
}

// EnforceZeroAvailability records the location and reports the configured
// variant count as zeroed
func (a *CommerceAdjuster) EnforceZeroAvailability(ctx context.Context, locationID string) (int, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.zeroErr != nil {
		return 0, a.zeroErr
	}
	a.ZeroedLocation = locationID
	return a.VariantCount, nil
}
