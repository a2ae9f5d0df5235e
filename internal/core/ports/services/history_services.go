package services

import (
	"context"
	"time"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// HistorySvcFacade reconstructs bills and daily totals from the flat log.
type HistorySvcFacade interface {
	// ListBills groups the log into display bills for one billed type,
	// sorted date desc then bill number desc.
	ListBills(ctx context.Context, billedType domain.TransactionType) ([]domain.BillGroup, error)

	// DailyPartyTotals sums one date's billed amounts per party, returning
	// the per-party rows and the grand total.
	DailyPartyTotals(ctx context.Context, billedType domain.TransactionType, date time.Time) ([]domain.PartyDayTotal, decimal.Decimal, error)
}
