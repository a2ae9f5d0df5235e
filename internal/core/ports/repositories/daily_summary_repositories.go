package repositories

import (
	"context"
	"time"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
)

// DailySummaryRepositoryFacade stores the end-of-day cash book, one row per
// calendar date, upserted with merge semantics.
type DailySummaryRepositoryFacade interface {
	// UpsertDailySummary inserts or overwrites the summary for its date.
	UpsertDailySummary(ctx context.Context, summary domain.DailyAccountSummary) error

	// FindDailySummary retrieves one date's summary.
	FindDailySummary(ctx context.Context, date time.Time) (*domain.DailyAccountSummary, error)

	// ListDailySummaries returns summaries newest first.
	ListDailySummaries(ctx context.Context) ([]domain.DailyAccountSummary, error)
}
