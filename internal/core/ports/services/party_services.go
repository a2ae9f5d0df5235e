package services

import (
	"context"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	"github.com/sabzimandi/mandi_backend/internal/dto"
)

// PartyReaderSvc defines read operations for parties and their balances.
type PartyReaderSvc interface {
	// GetPartyByID retrieves a specific party.
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves all parties of one type.
	ListParties(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error)

	// GetBalance retrieves one party's balance summary, walk-in clamped.
	GetBalance(ctx context.Context, partyID string) (*domain.PaymentDetail, error)

	// ListBalances retrieves all summaries for one party type, walk-in clamped.
	ListBalances(ctx context.Context, partyType domain.PartyType) ([]domain.PaymentDetail, error)
}

// PartyWriterSvc defines write operations for parties and balance corrections.
type PartyWriterSvc interface {
	// CreateParty persists a new party with a zeroed balance summary.
	CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error)

	// UpdateParty applies a partial update; code uniqueness is re-checked.
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest) (*domain.Party, error)

	// DeleteParty removes a party and its balance summary.
	DeleteParty(ctx context.Context, partyID string) error

	// CorrectBalance back-solves paidAmount from a user-entered dueAmount.
	CorrectBalance(ctx context.Context, partyID string, req dto.CorrectBalanceRequest) (*domain.PaymentDetail, error)
}

// PartySvcFacade combines all party-related service interfaces.
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}
