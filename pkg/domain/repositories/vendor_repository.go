package repositories

import (
	"context"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

// VendorRepository provides vendor cost and lead-time data for components
type VendorRepository interface {
	GetPrimaryVendor(ctx context.Context, componentID string) (*entities.PrimaryVendorTerms, error)
	GetEmergencyVendors(ctx context.Context, componentID string) ([]entities.EmergencyVendor, error)
}
