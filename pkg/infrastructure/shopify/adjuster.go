// Package shopify pushes inventory changes to a Shopify store via the
// Admin REST API.
package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vsinha/replenish/pkg/domain/entities"
	"github.com/vsinha/replenish/pkg/domain/repositories"
)

// Adjuster implements inventory adjustments against the Shopify Admin
// API. All bundle adjustments are applied at the primary location.
type Adjuster struct {
	client            *resty.Client
	primaryLocationID string
}

// NewAdjuster creates a Shopify inventory adjuster
func NewAdjuster(shopURL, accessToken, apiVersion, primaryLocationID string) *Adjuster {
	client := resty.New()
	client.SetBaseURL(fmt.Sprintf("%s/admin/api/%s", shopURL, apiVersion))
	client.SetHeader("X-Shopify-Access-Token", accessToken)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(30 * time.Second)

	return &Adjuster{
		client:            client,
		primaryLocationID: primaryLocationID,
	}
}

// Verify interface compliance
var _ repositories.CommerceAdjuster = (*Adjuster)(nil)

type adjustRequest struct {
	LocationID          string `json:"location_id"`
	InventoryItemID     string `json:"inventory_item_id"`
	AvailableAdjustment int    `json:"available_adjustment"`
}

type setRequest struct {
	LocationID      string `json:"location_id"`
	InventoryItemID string `json:"inventory_item_id"`
	Available       int    `json:"available"`
}

type inventoryLevel struct {
	InventoryItemID string `json:"inventory_item_id"`
	LocationID      string `json:"location_id"`
	Available       int    `json:"available"`
}

type inventoryLevelsResponse struct {
	InventoryLevels []inventoryLevel `json:"inventory_levels"`
}

// AdjustInventory applies each adjustment at the primary location and
// reports per-item outcomes. A failed item is recorded in its result,
// never raised, so one bad variant cannot block the rest of the batch.
func (a *Adjuster) AdjustInventory(ctx context.Context, adjustments []entities.InventoryAdjustment) ([]entities.AdjustmentResult, error) {
	results := make([]entities.AdjustmentResult, 0, len(adjustments))

	for _, adj := range adjustments {
		result := entities.AdjustmentResult{
			BundleID:  adj.BundleID,
			VariantID: adj.VariantID,
		}

		resp, err := a.client.R().
			SetContext(ctx).
			SetBody(adjustRequest{
				LocationID:          a.primaryLocationID,
				InventoryItemID:     adj.VariantID,
				AvailableAdjustment: adj.Adjustment,
			}).
			Post("/inventory_levels/adjust.json")

		switch {
		case err != nil:
			result.Error = fmt.Sprintf("failed to adjust inventory for %s: %v", adj.VariantID, err)
		case resp.StatusCode() != 200:
			result.Error = fmt.Sprintf("Shopify API error %d: %s", resp.StatusCode(), resp.String())
		default:
			result.Applied = true
		}

		results = append(results, result)
	}

	return results, nil
}

// EnforceZeroAvailability sets every non-zero inventory level at the
// given location to zero and returns how many variants were changed
func (a *Adjuster) EnforceZeroAvailability(ctx context.Context, locationID string) (int, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("location_ids", locationID).
		Get("/inventory_levels.json")
	if err != nil {
		return 0, fmt.Errorf("failed to fetch inventory levels for location %s: %w", locationID, err)
	}
	if resp.StatusCode() != 200 {
		return 0, fmt.Errorf("Shopify API error %d: %s", resp.StatusCode(), resp.String())
	}

	var levels inventoryLevelsResponse
	if err := json.Unmarshal(resp.Body(), &levels); err != nil {
		return 0, fmt.Errorf("failed to parse inventory levels response: %w", err)
	}

	zeroed := 0
	for _, level := range levels.InventoryLevels {
		if level.Available == 0 {
			continue
		}

		resp, err := a.client.R().
			SetContext(ctx).
			SetBody(setRequest{
				LocationID:      locationID,
				InventoryItemID: level.InventoryItemID,
				Available:       0,
			}).
			Post("/inventory_levels/set.json")
		if err != nil {
			return zeroed, fmt.Errorf("failed to zero inventory item %s: %w", level.InventoryItemID, err)
		}
		if resp.StatusCode() != 200 {
			return zeroed, fmt.Errorf("Shopify API error %d: %s", resp.StatusCode(), resp.String())
		}

		zeroed++
	}

	return zeroed, nil
}
