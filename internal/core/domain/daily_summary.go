package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyAccountSummary is the shopkeeper's end-of-day cash book entry,
// keyed by date and upserted with merge semantics.
type DailyAccountSummary struct {
	Date            time.Time       `json:"date"`
	CashSales       decimal.Decimal `json:"cashSales"`
	CreditSales     decimal.Decimal `json:"creditSales"`
	CashPurchases   decimal.Decimal `json:"cashPurchases"`
	CreditPurchases decimal.Decimal `json:"creditPurchases"`
	Expenses        decimal.Decimal `json:"expenses"`
	CashInHand      decimal.Decimal `json:"cashInHand"`
	Notes           string          `json:"notes"`
}
