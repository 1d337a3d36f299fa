package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

// Loader handles loading replenishment data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadSalesHistory loads per-SKU daily sales history from a CSV file
func (l *Loader) LoadSalesHistory(filename string) (map[entities.SKU][]entities.HistoricalSalesPoint, error) {
	records, err := readRecords(filename, "sales history",
		[]string{"sku", "date", "quantity"})
	if err != nil {
		return nil, err
	}

	history := make(map[entities.SKU][]entities.HistoricalSalesPoint)
	for i, record := range records {
		sku := entities.SKU(record[0])
		if sku == "" {
			return nil, fmt.Errorf("sales history CSV row %d: sku cannot be empty", i+2)
		}

		date, err := time.Parse("2006-01-02", record[1])
		if err != nil {
			return nil, fmt.Errorf("sales history CSV row %d: invalid date: %s", i+2, record[1])
		}

		quantity, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("sales history CSV row %d: invalid quantity: %s", i+2, record[2])
		}

		point, err := entities.NewHistoricalSalesPoint(date, quantity)
		if err != nil {
			return nil, fmt.Errorf("sales history CSV row %d: %w", i+2, err)
		}

		history[sku] = append(history[sku], *point)
	}

	return history, nil
}

// LoadBundles loads bundle definitions from a CSV file
func (l *Loader) LoadBundles(filename string) ([]*entities.BundleInfo, error) {
	records, err := readRecords(filename, "bundles",
		[]string{"bundle_id", "bundle_name", "blocking_component_id", "current_stock", "days_until_stockout"})
	if err != nil {
		return nil, err
	}

	var bundles []*entities.BundleInfo
	for i, record := range records {
		currentStock, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("bundles CSV row %d: invalid current_stock: %s", i+2, record[3])
		}

		daysUntilStockout, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("bundles CSV row %d: invalid days_until_stockout: %s", i+2, record[4])
		}

		bundle, err := entities.NewBundleInfo(record[0], record[1], record[2], currentStock, daysUntilStockout)
		if err != nil {
			return nil, fmt.Errorf("bundles CSV row %d: %w", i+2, err)
		}

		bundles = append(bundles, bundle)
	}

	return bundles, nil
}

// LoadBundleComponents loads per-bundle component requirements from a
// CSV file, keyed by bundle ID
func (l *Loader) LoadBundleComponents(filename string) (map[string][]entities.BundleComponent, error) {
	records, err := readRecords(filename, "bundle components",
		[]string{"bundle_id", "sku", "quantity_required", "current_quantity"})
	if err != nil {
		return nil, err
	}

	components := make(map[string][]entities.BundleComponent)
	for i, record := range records {
		bundleID := record[0]
		if bundleID == "" {
			return nil, fmt.Errorf("bundle components CSV row %d: bundle_id cannot be empty", i+2)
		}

		quantityRequired, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("bundle components CSV row %d: invalid quantity_required: %s", i+2, record[2])
		}

		currentQuantity, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("bundle components CSV row %d: invalid current_quantity: %s", i+2, record[3])
		}

		component, err := entities.NewBundleComponent(entities.SKU(record[1]), quantityRequired, currentQuantity)
		if err != nil {
			return nil, fmt.Errorf("bundle components CSV row %d: %w", i+2, err)
		}

		components[bundleID] = append(components[bundleID], *component)
	}

	return components, nil
}

// LoadPrimaryVendors loads primary vendor terms from a CSV file, keyed
// by component ID
func (l *Loader) LoadPrimaryVendors(filename string) (map[string]entities.PrimaryVendorTerms, error) {
	records, err := readRecords(filename, "primary vendors",
		[]string{"component_id", "vendor_id", "unit_cost", "lead_time_days"})
	if err != nil {
		return nil, err
	}

	vendors := make(map[string]entities.PrimaryVendorTerms)
	for i, record := range records {
		componentID := record[0]
		if componentID == "" {
			return nil, fmt.Errorf("primary vendors CSV row %d: component_id cannot be empty", i+2)
		}

		unitCost, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("primary vendors CSV row %d: invalid unit_cost: %s", i+2, record[2])
		}

		leadTimeDays, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("primary vendors CSV row %d: invalid lead_time_days: %s", i+2, record[3])
		}

		terms, err := entities.NewPrimaryVendorTerms(record[1], unitCost, leadTimeDays)
		if err != nil {
			return nil, fmt.Errorf("primary vendors CSV row %d: %w", i+2, err)
		}

		vendors[componentID] = *terms
	}

	return vendors, nil
}

// LoadEmergencyVendors loads emergency vendor candidates from a CSV
// file, keyed by component ID
func (l *Loader) LoadEmergencyVendors(filename string) (map[string][]entities.EmergencyVendor, error) {
	records, err := readRecords(filename, "emergency vendors",
		[]string{"component_id", "vendor_id", "vendor_name", "unit_cost", "lead_time_days", "reliability"})
	if err != nil {
		return nil, err
	}

	vendors := make(map[string][]entities.EmergencyVendor)
	for i, record := range records {
		componentID := record[0]
		if componentID == "" {
			return nil, fmt.Errorf("emergency vendors CSV row %d: component_id cannot be empty", i+2)
		}

		unitCost, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("emergency vendors CSV row %d: invalid unit_cost: %s", i+2, record[3])
		}

		leadTimeDays, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("emergency vendors CSV row %d: invalid lead_time_days: %s", i+2, record[4])
		}

		reliability, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			return nil, fmt.Errorf("emergency vendors CSV row %d: invalid reliability: %s", i+2, record[5])
		}

		vendor, err := entities.NewEmergencyVendor(record[1], record[2], unitCost, leadTimeDays, reliability)
		if err != nil {
			return nil, fmt.Errorf("emergency vendors CSV row %d: %w", i+2, err)
		}

		vendors[componentID] = append(vendors[componentID], *vendor)
	}

	return vendors, nil
}

// readRecords opens a CSV file, validates its header, and returns the
// data rows with per-row column count checks
func readRecords(filename, label string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", label, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", label, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", label)
	}

	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: %v, Got: %v", label, expectedHeader, records[0])
	}

	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s CSV row %d: expected %d columns, got %d", label, i+2, len(expectedHeader), len(record))
		}
	}

	return records[1:], nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}
