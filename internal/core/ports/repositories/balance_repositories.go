package repositories

import (
	"context"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
)

// BalanceReader defines read operations for balance summaries.
type BalanceReader interface {
	// FindSummaryByPartyID retrieves one party's balance summary.
	FindSummaryByPartyID(ctx context.Context, partyID string) (*domain.PaymentDetail, error)

	// ListSummaries retrieves all summaries for one party type, with the
	// party code denormalized in.
	ListSummaries(ctx context.Context, partyType domain.PartyType) ([]domain.PaymentDetail, error)
}

// BalanceWriter defines write operations for balance summaries outside the
// transaction write path (balance-correction edits).
type BalanceWriter interface {
	// UpdateSummary overwrites a summary's amounts. Returns
	// apperrors.ErrNotFound when the row does not exist.
	UpdateSummary(ctx context.Context, summary domain.PaymentDetail) error
}

// BalanceRepositoryFacade combines all balance-summary repository interfaces.
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
