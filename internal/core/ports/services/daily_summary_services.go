package services

import (
	"context"
	"time"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	"github.com/sabzimandi/mandi_backend/internal/dto"
)

// DailySummarySvcFacade manages the end-of-day cash book.
type DailySummarySvcFacade interface {
	UpsertDailySummary(ctx context.Context, date time.Time, req dto.UpsertDailySummaryRequest) (*domain.DailyAccountSummary, error)
	GetDailySummary(ctx context.Context, date time.Time) (*domain.DailyAccountSummary, error)
	ListDailySummaries(ctx context.Context) ([]domain.DailyAccountSummary, error)
}
