package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PrimaryVendorTerms holds the standing terms of a component's primary vendor
type PrimaryVendorTerms struct {
	VendorID     string
	UnitCost     decimal.Decimal
	LeadTimeDays int
}

// NewPrimaryVendorTerms creates validated PrimaryVendorTerms
func NewPrimaryVendorTerms(vendorID string, unitCost decimal.Decimal, leadTimeDays int) (*PrimaryVendorTerms, error) {
	if vendorID == "" {
		return nil, fmt.Errorf("vendor ID cannot be empty")
	}
	if unitCost.IsNegative() {
		return nil, fmt.Errorf("unit cost cannot be negative, got %s", unitCost)
	}
	if leadTimeDays <= 0 {
		return nil, fmt.Errorf("lead time must be positive, got %d", leadTimeDays)
	}

	return &PrimaryVendorTerms{
		VendorID:     vendorID,
		UnitCost:     unitCost,
		LeadTimeDays: leadTimeDays,
	}, nil
}

// EmergencyVendor is one alternate vendor able to supply a blocked
// component faster than the primary vendor, usually at a premium
type EmergencyVendor struct {
	VendorID     string
	VendorName   string
	UnitCost     decimal.Decimal
	LeadTimeDays int
	Reliability  float64
}

// NewEmergencyVendor creates a validated EmergencyVendor
func NewEmergencyVendor(vendorID, vendorName string, unitCost decimal.Decimal, leadTimeDays int, reliability float64) (*EmergencyVendor, error) {
	if vendorID == "" {
		return nil, fmt.Errorf("vendor ID cannot be empty")
	}
	if vendorName == "" {
		return nil, fmt.Errorf("vendor name cannot be empty")
	}
	if unitCost.IsNegative() {
		return nil, fmt.Errorf("unit cost cannot be negative, got %s", unitCost)
	}
	if leadTimeDays <= 0 {
		return nil, fmt.Errorf("lead time must be positive, got %d", leadTimeDays)
	}
	if reliability < 0 || reliability > 1 {
		return nil, fmt.Errorf("reliability must be between 0 and 1, got %f", reliability)
	}

	return &EmergencyVendor{
		VendorID:     vendorID,
		VendorName:   vendorName,
		UnitCost:     unitCost,
		LeadTimeDays: leadTimeDays,
		Reliability:  reliability,
	}, nil
}
