package domain

// PartyType distinguishes the two counterparties of the shop's ledger.
type PartyType string

const (
	PartySupplier PartyType = "Supplier"
	PartyCustomer PartyType = "Customer"
)

// WalkInCode is the sentinel customer code for anonymous cash sales.
// A walk-in customer never carries credit; its due amount is always zero.
const WalkInCode = "000"

// Party is a Supplier or Customer the shop trades with.
// Code is a short human-assigned identifier, unique within its party type.
type Party struct {
	PartyID string    `json:"partyID"`
	Type    PartyType `json:"type"`
	Name    string    `json:"name"`
	Contact string    `json:"contact"`
	Address string    `json:"address"`
	Code    string    `json:"code"`
}

// IsWalkIn reports whether this party is the sentinel walk-in customer.
func (p Party) IsWalkIn() bool {
	return p.Type == PartyCustomer && p.Code == WalkInCode
}
