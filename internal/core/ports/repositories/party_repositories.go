package repositories

import (
	"context"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
)

// PartyReader defines read operations for party data.
type PartyReader interface {
	// FindPartyByID retrieves a specific party by its ID.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// FindPartyByName retrieves a party of the given type by case-insensitive
	// name match. Returns apperrors.ErrNotFound when absent.
	FindPartyByName(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error)

	// ListParties retrieves all parties of one type.
	ListParties(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data.
type PartyWriter interface {
	// SaveParty persists a new party together with its zeroed balance
	// summary, atomically.
	SaveParty(ctx context.Context, party domain.Party, summary domain.PaymentDetail) error

	// UpdateParty updates a party and propagates the name to its summary.
	UpdateParty(ctx context.Context, party domain.Party) error

	// DeleteParty removes a party, cascading to its balance summary.
	DeleteParty(ctx context.Context, partyID string) error
}

// PartyRepositoryFacade combines all party-related repository interfaces.
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
