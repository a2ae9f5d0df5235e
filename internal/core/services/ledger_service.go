package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portsrepo "github.com/sabzimandi/mandi_backend/internal/core/ports/repositories"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/middleware"
	"github.com/sabzimandi/mandi_backend/internal/utils/accounting"
	"github.com/sabzimandi/mandi_backend/internal/utils/csvexport"
)

// ledgerService projects running balances from the log on demand. It holds
// no state of its own; every report is recomputed from the source rows.
type ledgerService struct {
	partyRepo       portsrepo.PartyRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	balanceRepo     portsrepo.BalanceRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(partyRepo portsrepo.PartyRepositoryFacade, transactionRepo portsrepo.TransactionRepositoryFacade, balanceRepo portsrepo.BalanceRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		partyRepo:       partyRepo,
		transactionRepo: transactionRepo,
		balanceRepo:     balanceRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// billedTypeFor is the inverse of the billing rule: suppliers accumulate
// purchases, customers accumulate sales.
func billedTypeFor(partyType domain.PartyType) domain.TransactionType {
	if partyType == domain.PartySupplier {
		return domain.Purchase
	}
	return domain.Sale
}

// loadPartyState fetches the party, its logged history and its stored due
// amount, the three inputs every projection needs.
func (s *ledgerService) loadPartyState(ctx context.Context, partyID string) (*domain.Party, []domain.Transaction, *domain.PaymentDetail, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, nil, nil, err
	}

	history, err := s.transactionRepo.ListTransactionsByParty(ctx, party.Name)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load transaction history: %w", err)
	}

	summary, err := s.balanceRepo.FindSummaryByPartyID(ctx, partyID)
	if err != nil {
		return nil, nil, nil, err
	}
	clampWalkIn(summary)

	return party, history, summary, nil
}

// ProjectLedger computes the day-grouped ledger for one party over [from, to].
func (s *ledgerService) ProjectLedger(ctx context.Context, partyID string, from, to *time.Time) (*domain.LedgerReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, history, summary, err := s.loadPartyState(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if to == nil {
		today := domain.Day(time.Now().UTC())
		to = &today
	}

	report := accounting.ProjectLedger(history, party.Name, billedTypeFor(party.Type), summary.DueAmount, from, to)
	logger.Debug("Ledger projected",
		slog.String("party_id", partyID),
		slog.Int("rows", len(report.Rows)))
	return &report, nil
}

// ExportLedgerCSV renders the projection as CSV.
func (s *ledgerService) ExportLedgerCSV(ctx context.Context, partyID string, from, to *time.Time) ([]byte, error) {
	report, err := s.ProjectLedger(ctx, partyID, from, to)
	if err != nil {
		return nil, err
	}
	return csvexport.LedgerCSV(*report)
}

// ReconcileParty compares the stored summary with what the log alone
// explains. Drift is reported, never corrected.
func (s *ledgerService) ReconcileParty(ctx context.Context, partyID string) (*domain.ReconciliationResult, error) {
	party, history, summary, err := s.loadPartyState(ctx, partyID)
	if err != nil {
		return nil, err
	}

	billed, paid := accounting.PartyTotals(history, party.Name, billedTypeFor(party.Type))
	logBalance := billed.Sub(paid)

	return &domain.ReconciliationResult{
		PartyID:    partyID,
		PartyName:  party.Name,
		SummaryDue: summary.DueAmount,
		LogBalance: logBalance,
		Drift:      summary.DueAmount.Sub(logBalance),
	}, nil
}
