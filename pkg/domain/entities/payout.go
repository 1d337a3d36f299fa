package entities

import "github.com/shopspring/decimal"

// PayoutBracket labels the piece-count bracket a payout falls into
type PayoutBracket string

const (
	BracketSmall  PayoutBracket = "1-4"
	BracketMedium PayoutBracket = "5-10"
	BracketLarge  PayoutBracket = "11+"
)

// PayoutItem is one picked line item. PackSize overrides any PACK tag
// when set to a positive value.
type PayoutItem struct {
	ProductID string   `json:"product_id"`
	Quantity  int      `json:"quantity"`
	PackSize  int      `json:"pack_size,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// PayoutItemBreakdown is the resolved piece accounting for one item
type PayoutItemBreakdown struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	PackSize  int    `json:"pack_size"`
	Pieces    int    `json:"pieces"`
}

// PickerPayout is the payout owed to a picker for one picked order
type PickerPayout struct {
	TotalPieces  int                   `json:"total_pieces"`
	PayoutAmount decimal.Decimal       `json:"payout_amount"`
	Bracket      PayoutBracket         `json:"bracket"`
	Items        []PayoutItemBreakdown `json:"items"`
}

// PickerOrder is one order's worth of picked items
type PickerOrder struct {
	OrderID string       `json:"order_id"`
	Items   []PayoutItem `json:"items"`
}

// OrderPayout pairs an order with its computed payout
type OrderPayout struct {
	OrderID string       `json:"order_id"`
	Payout  PickerPayout `json:"payout"`
}

// AggregatePayout is the total owed to a picker across multiple orders
type AggregatePayout struct {
	OrderCount  int             `json:"order_count"`
	TotalPieces int             `json:"total_pieces"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
