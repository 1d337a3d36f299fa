package repositories

import (
	"context"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

// CommerceAdjuster pushes inventory changes to the external commerce
// platform. AdjustInventory reports per-item outcomes; a failed item
// must not fail the batch.
type CommerceAdjuster interface {
	AdjustInventory(ctx context.Context, adjustments []entities.InventoryAdjustment) ([]entities.AdjustmentResult, error)
	EnforceZeroAvailability(ctx context.Context, locationID string) (int, error)
}
