package entities

import "testing"

func TestBundleComponent_AvailableForBundle(t *testing.T) {
	testCases := []struct {
		name             string
		quantityRequired int
		currentQuantity  int
		expected         int
	}{
		{"exact multiple", 2, 10, 5},
		{"fractional availability floors", 3, 10, 3},
		{"single per bundle", 1, 20, 20},
		{"insufficient stock", 4, 3, 0},
		{"zero stock", 2, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewBundleComponent("COMP-001", tc.quantityRequired, tc.currentQuantity)
			if err != nil {
				t.Fatalf("Expected valid component creation to succeed: %v", err)
			}
			if got := c.AvailableForBundle(); got != tc.expected {
				t.Errorf("Expected availability %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestBundleComponent_Validation(t *testing.T) {
	testCases := []struct {
		name             string
		sku              SKU
		quantityRequired int
		currentQuantity  int
		expectError      string
	}{
		{"empty sku", "", 1, 10, "component SKU cannot be empty"},
		{"zero quantity required", "COMP-001", 0, 10, "quantity required must be positive, got 0"},
		{"negative quantity required", "COMP-001", -2, 10, "quantity required must be positive, got -2"},
		{"negative current quantity", "COMP-001", 1, -1, "current quantity cannot be negative, got -1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBundleComponent(tc.sku, tc.quantityRequired, tc.currentQuantity)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestBundleAvailability(t *testing.T) {
	components := []BundleComponent{
		{SKU: "COMP-001", QuantityRequired: 1, CurrentQuantity: 10},
		{SKU: "COMP-002", QuantityRequired: 2, CurrentQuantity: 6},
		{SKU: "COMP-003", QuantityRequired: 1, CurrentQuantity: 20},
	}

	// COMP-002 caps the bundle at 3
	if got := BundleAvailability(components); got != 3 {
		t.Errorf("Expected bundle availability 3, got %d", got)
	}

	if got := BundleAvailability(nil); got != 0 {
		t.Errorf("Expected zero availability for no components, got %d", got)
	}
}

func TestClassifyStockAlert(t *testing.T) {
	testCases := []struct {
		name          string
		currentStock  int
		threshold     int
		expectedLevel AlertLevel
		expectNil     bool
	}{
		{"out of stock is critical", 0, 5, AlertCritical, false},
		{"negative stock is critical", -3, 5, AlertCritical, false},
		{"at threshold is warning", 5, 5, AlertWarning, false},
		{"below threshold is warning", 2, 5, AlertWarning, false},
		{"above threshold is quiet", 6, 5, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			alert := ClassifyStockAlert("bundle_001", "Premium Widget Bundle", tc.currentStock, tc.threshold)
			if tc.expectNil {
				if alert != nil {
					t.Fatalf("Expected no alert, got %+v", alert)
				}
				return
			}
			if alert == nil {
				t.Fatal("Expected an alert, got nil")
			}
			if alert.Level != tc.expectedLevel {
				t.Errorf("Expected level %s, got %s", tc.expectedLevel, alert.Level)
			}
			if alert.Message == "" {
				t.Error("Expected a human-readable message")
			}
		})
	}
}
