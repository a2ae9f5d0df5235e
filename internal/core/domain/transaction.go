package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of ledger event recorded.
type TransactionType string

const (
	Sale     TransactionType = "Sale"
	Purchase TransactionType = "Purchase"
	Payment  TransactionType = "Payment"
)

// Payment methods as entered at the counter. Only Credit is semantically
// special: a Credit bill collects nothing at sale/purchase time.
const (
	MethodCash   = "Cash"
	MethodCredit = "Credit"
	MethodUPI    = "UPI/Digital"
	MethodGPay   = "GPay"
	MethodNEFT   = "NEFT"
)

// Transaction is one line-level event in the append-only log. Sale and
// Purchase lines are billed items; Payment rows record actual cash movement.
// Immutable once written.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"` // calendar day, no time component
	Party         string          `json:"party"`
	Type          TransactionType `json:"type"`
	Item          string          `json:"item"`
	Amount        decimal.Decimal `json:"amount"`
	Payment       string          `json:"payment"`
	Quantity      decimal.Decimal `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	BillNumber    int             `json:"billNumber"` // scoped to Date; 0 for payments
	Debit         decimal.Decimal `json:"debit"`      // customer-side payment amount
	Credit        decimal.Decimal `json:"credit"`     // supplier-side payment amount
	CreatedAt     time.Time       `json:"createdAt"`  // tie-breaker within a bill
}

// MatchesParty reports whether the transaction belongs to the named party.
// Party names are matched case-insensitively, ignoring surrounding space,
// because transactions store the name as typed on the bill.
func (t Transaction) MatchesParty(name string) bool {
	return strings.EqualFold(strings.TrimSpace(t.Party), strings.TrimSpace(name))
}

// Day truncates a timestamp to its calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// TransactionBatch is a cart of same-day, same-party billed lines plus the
// amount collected at the counter, written atomically by the store together
// with the party's balance summary.
type TransactionBatch struct {
	Party      Party
	PartyIsNew bool

	// Lines are the Sale or Purchase items; BillNumber is assigned by the
	// store at commit time, from that date's own sequence.
	Lines []Transaction

	// PaymentLine is the synthetic Payment row recording the amount
	// collected alongside the bill. Nil when nothing was collected.
	PaymentLine *Transaction

	TotalAmount   decimal.Decimal
	AmountPaid    decimal.Decimal
	PaymentMethod string

	// ClampDueToZero forces the stored due amount to zero (walk-in sales).
	ClampDueToZero bool
}
