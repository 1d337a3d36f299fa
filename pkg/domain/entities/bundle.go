package entities

import "fmt"

// BundleInfo represents a composite product whose sellable quantity is
// capped by its scarcest required component
type BundleInfo struct {
	BundleID            string
	BundleName          string
	BlockingComponentID string
	CurrentStock        int
	DaysUntilStockout   int
}

// NewBundleInfo creates a validated BundleInfo
func NewBundleInfo(bundleID, bundleName, blockingComponentID string, currentStock, daysUntilStockout int) (*BundleInfo, error) {
	if bundleID == "" {
		return nil, fmt.Errorf("bundle ID cannot be empty")
	}
	if bundleName == "" {
		return nil, fmt.Errorf("bundle name cannot be empty")
	}
	if daysUntilStockout < 0 {
		return nil, fmt.Errorf("days until stockout cannot be negative, got %d", daysUntilStockout)
	}

	return &BundleInfo{
		BundleID:            bundleID,
		BundleName:          bundleName,
		BlockingComponentID: blockingComponentID,
		CurrentStock:        currentStock,
		DaysUntilStockout:   daysUntilStockout,
	}, nil
}

// BundleComponent represents one component requirement of a bundle
type BundleComponent struct {
	SKU              SKU
	QuantityRequired int
	CurrentQuantity  int
}

// NewBundleComponent creates a validated BundleComponent
func NewBundleComponent(sku SKU, quantityRequired, currentQuantity int) (*BundleComponent, error) {
	if sku == "" {
		return nil, fmt.Errorf("component SKU cannot be empty")
	}
	if quantityRequired <= 0 {
		return nil, fmt.Errorf("quantity required must be positive, got %d", quantityRequired)
	}
	if currentQuantity < 0 {
		return nil, fmt.Errorf("current quantity cannot be negative, got %d", currentQuantity)
	}

	return &BundleComponent{
		SKU:              sku,
		QuantityRequired: quantityRequired,
		CurrentQuantity:  currentQuantity,
	}, nil
}

// AvailableForBundle returns how many bundles this component can supply
func (c BundleComponent) AvailableForBundle() int {
	return c.CurrentQuantity / c.QuantityRequired
}

// BundleAvailability returns the virtual stock of a bundle: the minimum
// number of complete bundles its components can supply
func BundleAvailability(components []BundleComponent) int {
	if len(components) == 0 {
		return 0
	}

	min := components[0].AvailableForBundle()
	for _, c := range components[1:] {
		if avail := c.AvailableForBundle(); avail < min {
			min = avail
		}
	}
	return min
}

// StockDiscrepancy records a mismatch between stored and recomputed
// virtual stock for a bundle
type StockDiscrepancy struct {
	BundleID      string
	BundleName    string
	ExpectedStock int
	ActualStock   int
	Discrepancy   int
}

// InventoryAdjustment is one pending commerce-platform inventory change
type InventoryAdjustment struct {
	BundleID   string
	VariantID  string
	Adjustment int
}

// AdjustmentResult is the per-item outcome of pushing an adjustment to
// the commerce platform
type AdjustmentResult struct {
	BundleID  string
	VariantID string
	Applied   bool
	Error     string
}

// AlertLevel classifies the severity of a stock alert
type AlertLevel string

const (
	AlertCritical AlertLevel = "critical"
	AlertWarning  AlertLevel = "warning"
)

// StockAlert flags a bundle at or below an alerting stock level
type StockAlert struct {
	BundleID     string
	BundleName   string
	CurrentStock int
	Level        AlertLevel
	Message      string
}

// ClassifyStockAlert returns a stock alert for a bundle at the given
// stock level, or nil when the level is above the alert threshold
func ClassifyStockAlert(bundleID, bundleName string, currentStock, alertThreshold int) *StockAlert {
	switch {
	case currentStock <= 0:
		return &StockAlert{
			BundleID:     bundleID,
			BundleName:   bundleName,
			CurrentStock: currentStock,
			Level:        AlertCritical,
			Message:      fmt.Sprintf("CRITICAL: %s is completely out of stock", bundleName),
		}
	case currentStock <= alertThreshold:
		return &StockAlert{
			BundleID:     bundleID,
			BundleName:   bundleName,
			CurrentStock: currentStock,
			Level:        AlertWarning,
			Message:      fmt.Sprintf("WARNING: %s has only %d units remaining", bundleName, currentStock),
		}
	default:
		return nil
	}
}
