package dto

import (
	"nautica/shared/money"
)

// Breakdown is the fully-resolved price of one boat-day.
// Total stays non-negative by construction.
type Breakdown struct {
	BasePrice           money.Money `json:"base_price"`
	Modifier            float64     `json:"modifier"`
	PriceBeforeDiscount money.Money `json:"price_before_discount"`
	DiscountPercent     float64     `json:"discount_percent"`
	DiscountAmount      money.Money `json:"discount_amount"`
	Total               money.Money `json:"total"`
}
