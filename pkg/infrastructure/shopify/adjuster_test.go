package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

func newTestAdjuster(url string) *Adjuster {
	return NewAdjuster(url, "test-token", "2024-10", "loc_primary")
}

func TestAdjustInventory(t *testing.T) {
	var requests []adjustRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/api/2024-10/inventory_levels/adjust.json", r.URL.Path)
		require.Equal(t, "test-token", r.Header.Get("X-Shopify-Access-Token"))

		var req adjustRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)

		if req.InventoryItemID == "variant_bad" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	adjuster := newTestAdjuster(server.URL)
	results, err := adjuster.AdjustInventory(context.Background(), []entities.InventoryAdjustment{
		{BundleID: "bundle_001", VariantID: "variant_ok", Adjustment: -3},
		{BundleID: "bundle_002", VariantID: "variant_bad", Adjustment: 2},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].Applied)
	assert.Empty(t, results[0].Error)

	assert.False(t, results[1].Applied)
	assert.Contains(t, results[1].Error, "Shopify API error 422")

	require.Len(t, requests, 2)
	assert.Equal(t, "loc_primary", requests[0].LocationID)
	assert.Equal(t, -3, requests[0].AvailableAdjustment)
}

func TestEnforceZeroAvailability(t *testing.T) {
	var setRequests []setRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/api/2024-10/inventory_levels.json":
			require.Equal(t, "loc_warehouse_b", r.URL.Query().Get("location_ids"))
			json.NewEncoder(w).Encode(inventoryLevelsResponse{
				InventoryLevels: []inventoryLevel{
					{InventoryItemID: "item_1", LocationID: "loc_warehouse_b", Available: 12},
					{InventoryItemID: "item_2", LocationID: "loc_warehouse_b", Available: 0},
					{InventoryItemID: "item_3", LocationID: "loc_warehouse_b", Available: 5},
				},
			})
		case "/admin/api/2024-10/inventory_levels/set.json":
			var req setRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			setRequests = append(setRequests, req)
			w.WriteHeader(http.StatusOK)
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	adjuster := newTestAdjuster(server.URL)
	zeroed, err := adjuster.EnforceZeroAvailability(context.Background(), "loc_warehouse_b")
	require.NoError(t, err)

	// item_2 was already at zero and is left alone
	assert.Equal(t, 2, zeroed)
	require.Len(t, setRequests, 2)
	assert.Equal(t, "item_1", setRequests[0].InventoryItemID)
	assert.Equal(t, 0, setRequests[0].Available)
	assert.Equal(t, "item_3", setRequests[1].InventoryItemID)
}

func TestEnforceZeroAvailability_ListFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	adjuster := newTestAdjuster(server.URL)
	zeroed, err := adjuster.EnforceZeroAvailability(context.Background(), "loc_warehouse_b")

	assert.Error(t, err)
	assert.Equal(t, 0, zeroed)
	assert.Contains(t, err.Error(), "Shopify API error 503")
}

func TestEnforceZeroAvailability_SetFailureReturnsProgress(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/api/2024-10/inventory_levels.json":
			json.NewEncoder(w).Encode(inventoryLevelsResponse{
				InventoryLevels: []inventoryLevel{
					{InventoryItemID: "item_1", Available: 3},
					{InventoryItemID: "item_2", Available: 4},
				},
			})
		case "/admin/api/2024-10/inventory_levels/set.json":
			calls++
			if calls == 2 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	adjuster := newTestAdjuster(server.URL)
	zeroed, err := adjuster.EnforceZeroAvailability(context.Background(), "loc_warehouse_b")

	assert.Error(t, err)
	assert.Equal(t, 1, zeroed)
}
