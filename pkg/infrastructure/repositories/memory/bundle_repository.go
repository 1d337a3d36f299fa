package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/domain/repositories"
)

// BundleRepository provides in-memory bundle storage with virtual stock
// computed from component availability. Safe for concurrent use.
type BundleRepository struct {
	bundles    []entities.BundleInfo
	bundlesMap map[string]int
	components map[string][]entities.BundleComponent
	calcErrors map[string]error
	mutex      sync.RWMutex
}

// NewBundleRepository creates a new in-memory bundle repository
func NewBundleRepository() *BundleRepository {
	return &BundleRepository{
		bundlesMap: make(map[string]int),
		components: make(map[string][]entities.BundleComponent),
		calcErrors: make(map[string]error),
	}
}

// Verify interface compliance
var _ repositories.BundleRepository = (*BundleRepository)(nil)

// AddBundle adds a bundle with its component requirements
func (r *BundleRepository) AddBundle(bundle entities.BundleInfo, components []entities.BundleComponent) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.bundlesMap[bundle.BundleID] = len(r.bundles)
	r.bundles = append(r.bundles, bundle)
	r.components[bundle.BundleID] = components
}

// SetComponentQuantity updates the on-hand quantity of one component
func (r *BundleRepository) SetComponentQuantity(bundleID string, sku entities.SKU, quantity int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, c := range r.components[bundleID] {
		if c.SKU == sku {
			r.components[bundleID][i].CurrentQuantity = quantity
		}
	}
}

// SetCalculationError makes virtual stock recomputation fail for a bundle
func (r *BundleRepository) SetCalculationError(bundleID string, err error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.calcErrors[bundleID] = err
}

// ListBundles returns all bundles
func (r *BundleRepository) ListBundles(ctx context.Context) ([]*entities.BundleInfo, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var bundles []*entities.BundleInfo
	for i := range r.bundles {
		bundles = append(bundles, &r.bundles[i])
	}
	return bundles, nil
}

// GetBundle returns a bundle by ID
func (r *BundleRepository) GetBundle(ctx context.Context, bundleID string) (*entities.BundleInfo, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	index, exists := r.bundlesMap[bundleID]
	if !exists {
		return nil, fmt.Errorf("bundle not found: %s", bundleID)
	}
	return &r.bundles[index], nil
}

// GetComponents returns the component requirements of a bundle
func (r *BundleRepository) GetComponents(bundleID string) []entities.BundleComponent {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.components[bundleID]
}

// CalculateVirtualStock recomputes a bundle's sellable quantity from its
// scarcest component
func (r *BundleRepository) CalculateVirtualStock(ctx context.Context, bundleID string) (int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if err := r.calcErrors[bundleID]; err != nil {
		return 0, err
	}
	if _, exists := r.bundlesMap[bundleID]; !exists {
		return 0, fmt.Errorf("bundle not found: %s", bundleID)
	}
	return entities.BundleAvailability(r.components[bundleID]), nil
}

// SaveVirtualStock stores a recomputed virtual stock as the bundle's
// current stock
func (r *BundleRepository) SaveVirtualStock(ctx context.Context, bundleID string, virtualStock int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	index, exists := r.bundlesMap[bundleID]
	if !exists {
		return fmt.Errorf("bundle not found: %s", bundleID)
	}
	r.bundles[index].CurrentStock = virtualStock
	return nil
}
