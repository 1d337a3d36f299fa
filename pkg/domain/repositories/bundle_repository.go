package repositories

import (
	"context"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

// BundleRepository provides access to bundle definitions and virtual
// stock computation
type BundleRepository interface {
	ListBundles(ctx context.Context) ([]*entities.BundleInfo, error)
	GetBundle(ctx context.Context, bundleID string) (*entities.BundleInfo, error)
	CalculateVirtualStock(ctx context.Context, bundleID string) (int, error)
	SaveVirtualStock(ctx context.Context, bundleID string, virtualStock int) error
}
