package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portsrepo "github.com/sabzimandi/mandi_backend/internal/core/ports/repositories"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
)

// historyService reconstructs bills and daily totals from the flat log.
type historyService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.HistorySvcFacade {
	return &historyService{transactionRepo: transactionRepo}
}

var _ portssvc.HistorySvcFacade = (*historyService)(nil)

// ListBills groups the log into display bills for one billed type. Lines
// sharing a date and bill number fold into one bill; standalone payments on
// the same side of the counter appear as single-row entries.
func (s *historyService) ListBills(ctx context.Context, billedType domain.TransactionType) ([]domain.BillGroup, error) {
	log, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction log: %w", err)
	}

	groups := make(map[string]*domain.BillGroup)
	var order []string
	add := func(key string, t domain.Transaction) *domain.BillGroup {
		g, ok := groups[key]
		if !ok {
			g = &domain.BillGroup{
				BillNumber:  t.BillNumber,
				Date:        domain.Day(t.Date),
				Party:       t.Party,
				Type:        t.Type,
				Payment:     t.Payment,
				TotalAmount: decimal.Zero,
			}
			groups[key] = g
			order = append(order, key)
		}
		return g
	}

	for _, t := range log {
		switch {
		case t.Type == billedType:
			key := fmt.Sprintf("%s#%d", domain.Day(t.Date).Format("2006-01-02"), t.BillNumber)
			g := add(key, t)
			g.TotalAmount = g.TotalAmount.Add(t.Amount)
			g.Items = append(g.Items, domain.BillItem{
				Name:     t.Item,
				Quantity: t.Quantity,
				Price:    t.Price,
				Total:    t.Amount,
			})
		case t.Type == domain.Payment && paymentBelongsTo(t, billedType):
			g := add("payment#"+t.TransactionID, t)
			g.TotalAmount = t.Amount
			g.Items = append(g.Items, domain.BillItem{
				Name:  t.Item,
				Total: t.Amount,
			})
		}
	}

	bills := make([]domain.BillGroup, 0, len(order))
	for _, key := range order {
		bills = append(bills, *groups[key])
	}
	sort.SliceStable(bills, func(i, j int) bool {
		if !bills[i].Date.Equal(bills[j].Date) {
			return bills[i].Date.After(bills[j].Date)
		}
		return bills[i].BillNumber > bills[j].BillNumber
	})
	return bills, nil
}

// paymentBelongsTo reports whether a payment row sits on the billed type's
// side of the counter: debits are customer money in, credits supplier money
// out.
func paymentBelongsTo(t domain.Transaction, billedType domain.TransactionType) bool {
	if billedType == domain.Sale {
		return t.Debit.IsPositive()
	}
	return t.Credit.IsPositive()
}

// DailyPartyTotals sums one date's billed amounts per party.
func (s *historyService) DailyPartyTotals(ctx context.Context, billedType domain.TransactionType, date time.Time) ([]domain.PartyDayTotal, decimal.Decimal, error) {
	txns, err := s.transactionRepo.ListTransactionsByTypeAndDate(ctx, billedType, date)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to load transactions for date: %w", err)
	}

	perParty := make(map[string]decimal.Decimal)
	var order []string
	grandTotal := decimal.Zero
	for _, t := range txns {
		if _, ok := perParty[t.Party]; !ok {
			order = append(order, t.Party)
		}
		perParty[t.Party] = perParty[t.Party].Add(t.Amount)
		grandTotal = grandTotal.Add(t.Amount)
	}

	totals := make([]domain.PartyDayTotal, 0, len(order))
	for _, party := range order {
		totals = append(totals, domain.PartyDayTotal{Party: party, Amount: perParty[party]})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})
	return totals, grandTotal, nil
}
