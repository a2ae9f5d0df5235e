package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portsrepo "github.com/sabzimandi/mandi_backend/internal/core/ports/repositories"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/dto"
	"github.com/sabzimandi/mandi_backend/internal/middleware"
)

// dailySummaryService manages the end-of-day cash book, one row per date.
type dailySummaryService struct {
	summaryRepo portsrepo.DailySummaryRepositoryFacade
	events      portssvc.EventPublisher
}

// NewDailySummaryService creates a new DailySummaryService.
func NewDailySummaryService(summaryRepo portsrepo.DailySummaryRepositoryFacade, events portssvc.EventPublisher) portssvc.DailySummarySvcFacade {
	return &dailySummaryService{summaryRepo: summaryRepo, events: events}
}

var _ portssvc.DailySummarySvcFacade = (*dailySummaryService)(nil)

// UpsertDailySummary writes the cash book figures for one date, replacing
// any earlier entry for the same date.
func (s *dailySummaryService) UpsertDailySummary(ctx context.Context, date time.Time, req dto.UpsertDailySummaryRequest) (*domain.DailyAccountSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	summary := domain.DailyAccountSummary{
		Date:            domain.Day(date),
		CashSales:       req.CashSales,
		CreditSales:     req.CreditSales,
		CashPurchases:   req.CashPurchases,
		CreditPurchases: req.CreditPurchases,
		Expenses:        req.Expenses,
		CashInHand:      req.CashInHand,
		Notes:           req.Notes,
	}

	if err := s.summaryRepo.UpsertDailySummary(ctx, summary); err != nil {
		logger.Error("Failed to upsert daily summary",
			slog.String("error", err.Error()),
			slog.String("date", summary.Date.Format("2006-01-02")))
		return nil, fmt.Errorf("failed to upsert daily summary: %w", err)
	}

	if s.events != nil {
		s.events.Publish(portssvc.ChangeEvent{
			Collection: "dailySummaries",
			Action:     "update",
			ID:         summary.Date.Format("2006-01-02"),
		})
	}
	return &summary, nil
}

// GetDailySummary retrieves the cash book entry for one date.
func (s *dailySummaryService) GetDailySummary(ctx context.Context, date time.Time) (*domain.DailyAccountSummary, error) {
	return s.summaryRepo.FindDailySummary(ctx, domain.Day(date))
}

// ListDailySummaries retrieves all cash book entries, newest first.
func (s *dailySummaryService) ListDailySummaries(ctx context.Context) ([]domain.DailyAccountSummary, error) {
	return s.summaryRepo.ListDailySummaries(ctx)
}
