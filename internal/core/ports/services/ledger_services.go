package services

import (
	"context"
	"time"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
)

// LedgerSvcFacade projects running balances from the transaction log.
type LedgerSvcFacade interface {
	// ProjectLedger computes the day-grouped ledger for one party over
	// [from, to]. A nil from means "from the beginning", a nil to means
	// "through today".
	ProjectLedger(ctx context.Context, partyID string, from, to *time.Time) (*domain.LedgerReport, error)

	// ExportLedgerCSV renders the projection as CSV rows plus a summary line.
	ExportLedgerCSV(ctx context.Context, partyID string, from, to *time.Time) ([]byte, error)

	// ReconcileParty compares the stored summary with the projected closing
	// balance and reports drift. Best-effort, read-only.
	ReconcileParty(ctx context.Context, partyID string) (*domain.ReconciliationResult, error)
}
