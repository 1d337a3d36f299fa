package payout

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/vsinha/replenish/pkg/domain/entities"
)

// packTagPattern matches PACK:<n> product tags in any case. Digits
// only: "PACK:", "PACK:ABC", and "PACK:-5" all fail to match.
var packTagPattern = regexp.MustCompile(`(?i)^pack:([0-9]+)$`)

// payoutBrackets map total picked pieces to a flat payout amount
var payoutBrackets = []struct {
	maxPieces int // inclusive; -1 = open ended
	amount    decimal.Decimal
	bracket   entities.PayoutBracket
}{
	{4, decimal.RequireFromString("2.00"), entities.BracketSmall},
	{10, decimal.RequireFromString("4.00"), entities.BracketMedium},
	{-1, decimal.RequireFromString("7.00"), entities.BracketLarge},
}

// ParsePackSize extracts a pack size from product tags. Absent,
// malformed, or non-positive PACK tags fall back to a pack size of 1;
// the boolean reports whether a valid tag was found.
func ParsePackSize(tags []string) (int, bool) {
	for _, tag := range tags {
		match := packTagPattern.FindStringSubmatch(tag)
		if match == nil {
			continue
		}
		size, err := strconv.Atoi(match[1])
		if err != nil || size <= 0 {
			continue
		}
		return size, true
	}
	return 1, false
}

// PayoutAmount returns the flat payout for a total piece count. Zero or
// negative pieces pay nothing.
func PayoutAmount(totalPieces int) decimal.Decimal {
	if totalPieces <= 0 {
		return decimal.Zero
	}
	for _, b := range payoutBrackets {
		if b.maxPieces < 0 || totalPieces <= b.maxPieces {
			return b.amount
		}
	}
	return decimal.Zero
}

// BracketFor returns the bracket label for a total piece count
func BracketFor(totalPieces int) entities.PayoutBracket {
	for _, b := range payoutBrackets {
		if b.maxPieces < 0 || totalPieces <= b.maxPieces {
			return b.bracket
		}
	}
	return entities.BracketLarge
}

// resolvePackSize prefers an explicit PackSize over the PACK tag
func resolvePackSize(item entities.PayoutItem) int {
	if item.PackSize > 0 {
		return item.PackSize
	}
	size, _ := ParsePackSize(item.Tags)
	return size
}

// CalculateOrderPayout computes a picker's payout for one order: each
// item contributes quantity × pack size pieces, and the total piece
// count selects the payout bracket.
func CalculateOrderPayout(items []entities.PayoutItem) entities.PickerPayout {
	breakdown := make([]entities.PayoutItemBreakdown, 0, len(items))
	totalPieces := 0

	for _, item := range items {
		packSize := resolvePackSize(item)
		pieces := item.Quantity * packSize
		totalPieces += pieces

		breakdown = append(breakdown, entities.PayoutItemBreakdown{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			PackSize:  packSize,
			Pieces:    pieces,
		})
	}

	return entities.PickerPayout{
		TotalPieces:  totalPieces,
		PayoutAmount: PayoutAmount(totalPieces),
		Bracket:      BracketFor(totalPieces),
		Items:        breakdown,
	}
}

// CalculateOrderPayouts computes payouts for multiple orders
func CalculateOrderPayouts(orders []entities.PickerOrder) []entities.OrderPayout {
	payouts := make([]entities.OrderPayout, 0, len(orders))
	for _, order := range orders {
		payouts = append(payouts, entities.OrderPayout{
			OrderID: order.OrderID,
			Payout:  CalculateOrderPayout(order.Items),
		})
	}
	return payouts
}

// AggregatePickerPayout totals a picker's payout across multiple
// orders. Each order is bracketed independently.
func AggregatePickerPayout(orders []entities.PickerOrder) entities.AggregatePayout {
	aggregate := entities.AggregatePayout{TotalAmount: decimal.Zero}
	for _, order := range orders {
		p := CalculateOrderPayout(order.Items)
		aggregate.OrderCount++
		aggregate.TotalPieces += p.TotalPieces
		aggregate.TotalAmount = aggregate.TotalAmount.Add(p.PayoutAmount)
	}
	return aggregate
}
