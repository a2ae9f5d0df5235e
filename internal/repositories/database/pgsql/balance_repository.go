package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sabzimandi/mandi_backend/internal/apperrors"
	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portsrepo "github.com/sabzimandi/mandi_backend/internal/core/ports/repositories"
)

type PgxBalanceRepository struct {
	BaseRepository
}

// newPgxBalanceRepository creates a new repository for balance summaries.
func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

// Summaries join the party code in; it lives on the parties table only.
const summaryColumns = `pd.party_id, pd.party_type, pd.party_name, COALESCE(p.code, ''), pd.total_amount, pd.paid_amount, pd.due_amount, pd.payment_method`

func scanSummary(row pgx.Row) (*domain.PaymentDetail, error) {
	var s domain.PaymentDetail
	err := row.Scan(
		&s.PartyID, &s.PartyType, &s.PartyName, &s.Code,
		&s.TotalAmount, &s.PaidAmount, &s.DueAmount, &s.PaymentMethod,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindSummaryByPartyID retrieves one party's balance summary.
func (r *PgxBalanceRepository) FindSummaryByPartyID(ctx context.Context, partyID string) (*domain.PaymentDetail, error) {
	query := `
		SELECT ` + summaryColumns + `
		FROM payment_details pd
		LEFT JOIN parties p ON p.party_id = pd.party_id
		WHERE pd.party_id = $1;
	`
	summary, err := scanSummary(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find balance summary for party %s: %w", partyID, err)
	}
	return summary, nil
}

// ListSummaries retrieves all summaries for one party type.
func (r *PgxBalanceRepository) ListSummaries(ctx context.Context, partyType domain.PartyType) ([]domain.PaymentDetail, error) {
	query := `
		SELECT ` + summaryColumns + `
		FROM payment_details pd
		LEFT JOIN parties p ON p.party_id = pd.party_id
		WHERE pd.party_type = $1
		ORDER BY pd.party_name;
	`
	rows, err := r.Pool.Query(ctx, query, partyType)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance summaries: %w", err)
	}
	defer rows.Close()

	summaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PaymentDetail, error) {
		var s domain.PaymentDetail
		err := row.Scan(
			&s.PartyID, &s.PartyType, &s.PartyName, &s.Code,
			&s.TotalAmount, &s.PaidAmount, &s.DueAmount, &s.PaymentMethod,
		)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan balance summaries: %w", err)
	}
	return summaries, nil
}

// UpdateSummary overwrites a summary's amounts.
func (r *PgxBalanceRepository) UpdateSummary(ctx context.Context, summary domain.PaymentDetail) error {
	query := `
		UPDATE payment_details
		SET total_amount = $2, paid_amount = $3, due_amount = $4, payment_method = $5
		WHERE party_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		summary.PartyID, summary.TotalAmount, summary.PaidAmount,
		summary.DueAmount, summary.PaymentMethod)
	if err != nil {
		return fmt.Errorf("failed to update balance summary for party %s: %w", summary.PartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
