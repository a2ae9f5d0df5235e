package dto

import (
	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest is the payload for creating a supplier or customer.
type CreatePartyRequest struct {
	Type    domain.PartyType `json:"type" binding:"required,oneof=Supplier Customer"`
	Name    string           `json:"name" binding:"required"`
	Contact string           `json:"contact"`
	Address string           `json:"address"`
	Code    string           `json:"code"`
}

// UpdatePartyRequest applies a partial update; nil fields are left unchanged.
type UpdatePartyRequest struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
	Code    *string `json:"code"`
}

// CorrectBalanceRequest is a balance-correction edit: the user enters the
// party's true outstanding amount and paidAmount is back-solved from it.
type CorrectBalanceRequest struct {
	DueAmount     decimal.Decimal `json:"dueAmount" binding:"required"`
	PaymentMethod *string         `json:"paymentMethod"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID string           `json:"partyID"`
	Type    domain.PartyType `json:"type"`
	Name    string           `json:"name"`
	Contact string           `json:"contact"`
	Address string           `json:"address"`
	Code    string           `json:"code"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID: p.PartyID,
		Type:    p.Type,
		Name:    p.Name,
		Contact: p.Contact,
		Address: p.Address,
		Code:    p.Code,
	}
}

// ToPartyResponses converts a slice of domain.Party to []PartyResponse.
func ToPartyResponses(parties []domain.Party) []PartyResponse {
	responses := make([]PartyResponse, len(parties))
	for i := range parties {
		responses[i] = ToPartyResponse(&parties[i])
	}
	return responses
}
