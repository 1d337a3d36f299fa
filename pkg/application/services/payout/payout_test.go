package payout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

func TestParsePackSize(t *testing.T) {
	testCases := []struct {
		name     string
		tags     []string
		expected int
		found    bool
	}{
		{"uppercase tag", []string{"PACK:6"}, 6, true},
		{"lowercase tag", []string{"pack:12"}, 12, true},
		{"mixed case tag", []string{"Pack:6"}, 6, true},
		{"pack of one", []string{"PACK:1"}, 1, true},
		{"among other tags", []string{"BUNDLE:TRUE", "PACK:6", "FEATURED"}, 6, true},
		{"no pack tag", []string{"BUNDLE:TRUE", "FEATURED"}, 1, false},
		{"no tags", nil, 1, false},
		{"empty value", []string{"PACK:"}, 1, false},
		{"non-numeric value", []string{"PACK:ABC"}, 1, false},
		{"zero pack", []string{"PACK:0"}, 1, false},
		{"negative pack", []string{"PACK:-5"}, 1, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			size, found := ParsePackSize(tc.tags)
			assert.Equal(t, tc.expected, size)
			assert.Equal(t, tc.found, found)
		})
	}
}

func TestPayoutAmount(t *testing.T) {
	testCases := []struct {
		pieces   int
		expected string
	}{
		{0, "0.00"},
		{-5, "0.00"},
		{1, "2.00"},
		{4, "2.00"},
		{5, "4.00"},
		{7, "4.00"},
		{10, "4.00"},
		{11, "7.00"},
		{100, "7.00"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, PayoutAmount(tc.pieces).StringFixed(2), "pieces=%d", tc.pieces)
	}
}

func TestPayoutAmount_Monotonic(t *testing.T) {
	// Increasing total pieces never decreases the payout
	previous := PayoutAmount(0)
	for pieces := 1; pieces <= 50; pieces++ {
		current := PayoutAmount(pieces)
		assert.True(t, current.GreaterThanOrEqual(previous), "payout dropped at %d pieces", pieces)
		previous = current
	}
}

func TestBracketFor(t *testing.T) {
	assert.Equal(t, entities.BracketSmall, BracketFor(1))
	assert.Equal(t, entities.BracketSmall, BracketFor(4))
	assert.Equal(t, entities.BracketMedium, BracketFor(5))
	assert.Equal(t, entities.BracketMedium, BracketFor(10))
	assert.Equal(t, entities.BracketLarge, BracketFor(11))
	assert.Equal(t, entities.BracketLarge, BracketFor(50))
}

func TestCalculateOrderPayout_EmptyOrder(t *testing.T) {
	result := CalculateOrderPayout(nil)

	assert.Equal(t, 0, result.TotalPieces)
	assert.True(t, result.PayoutAmount.IsZero())
	assert.Equal(t, entities.BracketSmall, result.Bracket)
	assert.Empty(t, result.Items)
}

func TestCalculateOrderPayout_PackTags(t *testing.T) {
	items := []entities.PayoutItem{
		{ProductID: "prod_1", Quantity: 1, Tags: []string{"PACK:6"}},
		{ProductID: "prod_2", Quantity: 2},
	}

	result := CalculateOrderPayout(items)

	assert.Equal(t, 8, result.TotalPieces)
	assert.Equal(t, "4.00", result.PayoutAmount.StringFixed(2))
	assert.Equal(t, entities.BracketMedium, result.Bracket)
}

func TestCalculateOrderPayout_ExplicitPackSizeWins(t *testing.T) {
	items := []entities.PayoutItem{
		{ProductID: "prod_1", Quantity: 1, PackSize: 12, Tags: []string{"PACK:6"}},
	}

	result := CalculateOrderPayout(items)

	assert.Equal(t, 12, result.TotalPieces)
	assert.Equal(t, 12, result.Items[0].PackSize)
	assert.Equal(t, entities.BracketLarge, result.Bracket)
}

func TestCalculateOrderPayout_MixedPackSizes(t *testing.T) {
	items := []entities.PayoutItem{
		{ProductID: "prod_1", Quantity: 1, Tags: []string{"PACK:6"}},  // 6 pieces
		{ProductID: "prod_2", Quantity: 2, Tags: []string{"PACK:12"}}, // 24 pieces
		{ProductID: "prod_3", Quantity: 3},                            // 3 pieces
	}

	result := CalculateOrderPayout(items)

	assert.Equal(t, 33, result.TotalPieces)
	assert.Equal(t, "7.00", result.PayoutAmount.StringFixed(2))
	require.Len(t, result.Items, 3)
	assert.Equal(t, entities.PayoutItemBreakdown{ProductID: "prod_1", Quantity: 1, PackSize: 6, Pieces: 6}, result.Items[0])
	assert.Equal(t, entities.PayoutItemBreakdown{ProductID: "prod_3", Quantity: 3, PackSize: 1, Pieces: 3}, result.Items[2])
}

func TestCalculateOrderPayouts(t *testing.T) {
	orders := []entities.PickerOrder{
		{OrderID: "order_1", Items: []entities.PayoutItem{{ProductID: "prod_1", Quantity: 2}}},
		{OrderID: "order_2", Items: []entities.PayoutItem{{ProductID: "prod_2", Quantity: 1, Tags: []string{"PACK:6"}}}},
	}

	results := CalculateOrderPayouts(orders)

	require.Len(t, results, 2)
	assert.Equal(t, "order_1", results[0].OrderID)
	assert.Equal(t, 2, results[0].Payout.TotalPieces)
	assert.Equal(t, "2.00", results[0].Payout.PayoutAmount.StringFixed(2))
	assert.Equal(t, "order_2", results[1].OrderID)
	assert.Equal(t, 6, results[1].Payout.TotalPieces)
	assert.Equal(t, "4.00", results[1].Payout.PayoutAmount.StringFixed(2))

	assert.Empty(t, CalculateOrderPayouts(nil))
}

func TestAggregatePickerPayout(t *testing.T) {
	orders := []entities.PickerOrder{
		{OrderID: "order_1", Items: []entities.PayoutItem{{ProductID: "prod_1", Quantity: 3}}},
		{OrderID: "order_2", Items: []entities.PayoutItem{{ProductID: "prod_2", Quantity: 2, Tags: []string{"PACK:6"}}}},
	}

	aggregate := AggregatePickerPayout(orders)

	assert.Equal(t, 2, aggregate.OrderCount)
	assert.Equal(t, 15, aggregate.TotalPieces)
	// 2.00 for 3 pieces + 7.00 for 12 pieces
	assert.Equal(t, "9.00", aggregate.TotalAmount.StringFixed(2))
}
