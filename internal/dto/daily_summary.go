package dto

import "github.com/shopspring/decimal"

// UpsertDailySummaryRequest carries the end-of-day cash book figures for one
// date. The date itself comes from the URL path.
type UpsertDailySummaryRequest struct {
	CashSales       decimal.Decimal `json:"cashSales"`
	CreditSales     decimal.Decimal `json:"creditSales"`
	CashPurchases   decimal.Decimal `json:"cashPurchases"`
	CreditPurchases decimal.Decimal `json:"creditPurchases"`
	Expenses        decimal.Decimal `json:"expenses"`
	CashInHand      decimal.Decimal `json:"cashInHand"`
	Notes           string          `json:"notes"`
}
