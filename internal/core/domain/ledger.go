package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one calendar day of a party's ledger: the balance carried in,
// the day's billed amount and collections, and the balance carried out.
type LedgerRow struct {
	Date           time.Time       `json:"date"`
	Opening        decimal.Decimal `json:"opening"`
	Purchases      decimal.Decimal `json:"purchases"` // billed Sale/Purchase total for the day
	Credit         decimal.Decimal `json:"credit"`    // payments received/given that day
	PaymentMethods []string        `json:"paymentMethods"`
	Closing        decimal.Decimal `json:"closing"`
}

// LedgerReport is the projected ledger for one party over a period.
// Rows are ordered newest first for display.
type LedgerReport struct {
	Rows           []LedgerRow     `json:"rows"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}
