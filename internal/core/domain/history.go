package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillItem is one line of a reconstructed bill.
type BillItem struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

// BillGroup is a bill reconstructed from the flat transaction log: all
// Sale/Purchase lines sharing a date and bill number, or a single Payment
// row standing on its own.
type BillGroup struct {
	BillNumber  int             `json:"billNumber"`
	Date        time.Time       `json:"date"`
	Party       string          `json:"party"`
	Type        TransactionType `json:"type"`
	Payment     string          `json:"payment"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Items       []BillItem      `json:"items"`
}

// PartyDayTotal is one party's billed total for a single date, used by the
// daily sales/purchase reports.
type PartyDayTotal struct {
	Party  string          `json:"party"`
	Amount decimal.Decimal `json:"amount"`
}
