package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sabzimandi/mandi_backend/internal/apperrors"
	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portsrepo "github.com/sabzimandi/mandi_backend/internal/core/ports/repositories"
)

type PgxDailySummaryRepository struct {
	BaseRepository
}

// newPgxDailySummaryRepository creates a new repository for the daily cash book.
func newPgxDailySummaryRepository(pool *pgxpool.Pool) portsrepo.DailySummaryRepositoryFacade {
	return &PgxDailySummaryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DailySummaryRepositoryFacade = (*PgxDailySummaryRepository)(nil)

const dailySummaryColumns = `summary_date, cash_sales, credit_sales, cash_purchases, credit_purchases, expenses, cash_in_hand, notes`

// UpsertDailySummary inserts or overwrites the summary for its date.
func (r *PgxDailySummaryRepository) UpsertDailySummary(ctx context.Context, summary domain.DailyAccountSummary) error {
	query := `
		INSERT INTO daily_summaries (` + dailySummaryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (summary_date) DO UPDATE SET
			cash_sales = EXCLUDED.cash_sales,
			credit_sales = EXCLUDED.credit_sales,
			cash_purchases = EXCLUDED.cash_purchases,
			credit_purchases = EXCLUDED.credit_purchases,
			expenses = EXCLUDED.expenses,
			cash_in_hand = EXCLUDED.cash_in_hand,
			notes = EXCLUDED.notes;
	`
	_, err := r.Pool.Exec(ctx, query,
		summary.Date, summary.CashSales, summary.CreditSales,
		summary.CashPurchases, summary.CreditPurchases,
		summary.Expenses, summary.CashInHand, summary.Notes)
	if err != nil {
		return fmt.Errorf("failed to upsert daily summary for %s: %w", summary.Date.Format("2006-01-02"), err)
	}
	return nil
}

// FindDailySummary retrieves one date's summary.
func (r *PgxDailySummaryRepository) FindDailySummary(ctx context.Context, date time.Time) (*domain.DailyAccountSummary, error) {
	query := `SELECT ` + dailySummaryColumns + ` FROM daily_summaries WHERE summary_date = $1;`
	var s domain.DailyAccountSummary
	err := r.Pool.QueryRow(ctx, query, domain.Day(date)).Scan(
		&s.Date, &s.CashSales, &s.CreditSales,
		&s.CashPurchases, &s.CreditPurchases,
		&s.Expenses, &s.CashInHand, &s.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find daily summary for %s: %w", date.Format("2006-01-02"), err)
	}
	return &s, nil
}

// ListDailySummaries returns summaries newest first.
func (r *PgxDailySummaryRepository) ListDailySummaries(ctx context.Context) ([]domain.DailyAccountSummary, error) {
	query := `SELECT ` + dailySummaryColumns + ` FROM daily_summaries ORDER BY summary_date DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily summaries: %w", err)
	}
	defer rows.Close()

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyAccountSummary, error) {
		var s domain.DailyAccountSummary
		err := row.Scan(
			&s.Date, &s.CashSales, &s.CreditSales,
			&s.CashPurchases, &s.CreditPurchases,
			&s.Expenses, &s.CashInHand, &s.Notes,
		)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily summaries: %w", err)
	}
	return summaries, nil
}
