package domain

import "github.com/shopspring/decimal"

// PaymentDetail is the denormalized running balance for one party, updated
// transactionally alongside the transaction log.
// Invariant: DueAmount == TotalAmount - PaidAmount, except the walk-in
// customer whose due is clamped to zero.
type PaymentDetail struct {
	PartyID       string          `json:"partyId"`
	PartyType     PartyType       `json:"partyType"`
	PartyName     string          `json:"partyName"`
	Code          string          `json:"code"` // denormalized from the party record
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	DueAmount     decimal.Decimal `json:"dueAmount"`
	PaymentMethod string          `json:"paymentMethod"`
}

// ReconciliationResult compares the stored summary due against the balance
// the transaction log alone explains. Drift is the difference the projector
// absorbs as its pre-log opening anchor: zero when the log fully explains
// the summary. It cannot distinguish a legacy imported balance from
// corruption, so it is reported, never corrected.
type ReconciliationResult struct {
	PartyID    string          `json:"partyId"`
	PartyName  string          `json:"partyName"`
	SummaryDue decimal.Decimal `json:"summaryDue"`
	LogBalance decimal.Decimal `json:"logBalance"`
	Drift      decimal.Decimal `json:"drift"`
}
