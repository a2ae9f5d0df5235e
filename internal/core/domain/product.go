package domain

import "github.com/shopspring/decimal"

// Product is a static catalog entry with three negotiated rate tiers.
// ItemCode is unique, case-insensitive.
type Product struct {
	ProductID string          `json:"productID"`
	ItemCode  string          `json:"itemCode"`
	Name      string          `json:"name"`
	Rate1     decimal.Decimal `json:"rate1"`
	Rate2     decimal.Decimal `json:"rate2"`
	Rate3     decimal.Decimal `json:"rate3"`
}
