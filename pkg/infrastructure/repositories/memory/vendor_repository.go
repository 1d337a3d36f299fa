package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/domain/repositories"
)

// VendorRepository provides in-memory vendor terms per component.
// Safe for concurrent use.
type VendorRepository struct {
	primary   map[string]entities.PrimaryVendorTerms
	emergency map[string][]entities.EmergencyVendor
	mutex     sync.RWMutex
}

// NewVendorRepository creates a new in-memory vendor repository
func NewVendorRepository() *VendorRepository {
	return &VendorRepository{
		primary:   make(map[string]entities.PrimaryVendorTerms),
		emergency: make(map[string][]entities.EmergencyVendor),
	}
}

// Verify interface compliance
var _ repositories.VendorRepository = (*VendorRepository)(nil)

// SetPrimaryVendor registers the primary vendor terms for a component
func (r *VendorRepository) SetPrimaryVendor(componentID string, terms entities.PrimaryVendorTerms) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.primary[componentID] = terms
}

// AddEmergencyVendor registers an emergency vendor for a component
func (r *VendorRepository) AddEmergencyVendor(componentID string, vendor entities.EmergencyVendor) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.emergency[componentID] = append(r.emergency[componentID], vendor)
}

// GetPrimaryVendor returns the primary vendor terms for a component
func (r *VendorRepository) GetPrimaryVendor(ctx context.Context, componentID string) (*entities.PrimaryVendorTerms, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	terms, exists := r.primary[componentID]
	if !exists {
		return nil, fmt.Errorf("primary vendor not found: %s", componentID)
	}
	return &terms, nil
}

// GetEmergencyVendors returns the emergency vendors for a component
func (r *VendorRepository) GetEmergencyVendors(ctx context.Context, componentID string) ([]entities.EmergencyVendor, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.emergency[componentID], nil
}
