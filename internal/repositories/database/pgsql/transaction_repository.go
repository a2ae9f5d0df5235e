package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sabzimandi/mandi_backend/internal/apperrors"
	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portsrepo "github.com/sabzimandi/mandi_backend/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for the transaction log.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, txn_date, party, txn_type, item, amount, payment, quantity, price, bill_number, debit, credit, created_at`

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var t domain.Transaction
		err := row.Scan(
			&t.TransactionID, &t.Date, &t.Party, &t.Type, &t.Item,
			&t.Amount, &t.Payment, &t.Quantity, &t.Price,
			&t.BillNumber, &t.Debit, &t.Credit, &t.CreatedAt,
		)
		return t, err
	})
}

// ListTransactions returns the full log sorted date desc, bill desc,
// created_at desc.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY txn_date DESC, bill_number DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return txns, nil
}

// ListTransactionsByParty returns one party's history, matched
// case-insensitively, oldest first.
func (r *PgxTransactionRepository) ListTransactionsByParty(ctx context.Context, name string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE LOWER(TRIM(party)) = LOWER(TRIM($1))
		ORDER BY txn_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for party %s: %w", name, err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions for party %s: %w", name, err)
	}
	return txns, nil
}

// ListTransactionsByTypeAndDate returns transactions of one type on one
// calendar day.
func (r *PgxTransactionRepository) ListTransactionsByTypeAndDate(ctx context.Context, txnType domain.TransactionType, date time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE txn_type = $1 AND txn_date = $2
		ORDER BY bill_number ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, txnType, domain.Day(date))
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by type and date: %w", err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions by type and date: %w", err)
	}
	return txns, nil
}

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

// RecordBatch commits a bill atomically. The date's bill sequence is guarded
// by an advisory lock so no two concurrent bills on the same day can read
// the same MAX; Postgres does not allow FOR UPDATE on an aggregate.
func (r *PgxTransactionRepository) RecordBatch(ctx context.Context, batch domain.TransactionBatch) (int, error) {
	if len(batch.Lines) == 0 {
		return 0, apperrors.ErrValidation
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	day := domain.Day(batch.Lines[0].Date)
	dayKey := day.Format("2006-01-02")

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('bill_number:' || $1));`, dayKey)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to acquire bill number lock for "+dayKey, err)
	}

	var billNumber int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(bill_number), 0) + 1 FROM transactions WHERE txn_date = $1;`,
		day).Scan(&billNumber)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to assign bill number for "+dayKey, err)
	}

	if batch.PartyIsNew {
		_, err = tx.Exec(ctx,
			`INSERT INTO parties (party_id, party_type, name, contact, address, code) VALUES ($1, $2, $3, $4, $5, $6);`,
			batch.Party.PartyID, batch.Party.Type, batch.Party.Name,
			batch.Party.Contact, batch.Party.Address, batch.Party.Code)
		if err != nil {
			if isUniqueViolation(err) {
				return 0, apperrors.ErrDuplicate
			}
			return 0, apperrors.NewAppError(500, "failed to insert party "+batch.Party.PartyID, err)
		}
	}

	pgxBatch := &pgx.Batch{}
	for _, line := range batch.Lines {
		pgxBatch.Queue(insertTransactionQuery,
			line.TransactionID, day, line.Party, line.Type, line.Item,
			line.Amount, line.Payment, line.Quantity, line.Price,
			billNumber, line.Debit, line.Credit, line.CreatedAt)
	}
	if p := batch.PaymentLine; p != nil {
		pgxBatch.Queue(insertTransactionQuery,
			p.TransactionID, day, p.Party, p.Type, p.Item,
			p.Amount, p.Payment, p.Quantity, p.Price,
			0, p.Debit, p.Credit, p.CreatedAt)
	}

	br := tx.SendBatch(ctx, pgxBatch)
	if err := br.Close(); err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert transaction lines for bill "+dayKey, err)
	}

	// Fold the batch into the balance summary. The due delta is what was
	// billed but not collected; walk-in bills keep due pinned at zero.
	summaryQuery := `
		INSERT INTO payment_details (party_id, party_type, party_name, total_amount, paid_amount, due_amount, payment_method)
		VALUES ($1, $2, $3, $4, $5, CASE WHEN $7 THEN 0 ELSE $6 END, $8)
		ON CONFLICT (party_id) DO UPDATE SET
			total_amount = payment_details.total_amount + EXCLUDED.total_amount,
			paid_amount = payment_details.paid_amount + EXCLUDED.paid_amount,
			due_amount = CASE WHEN $7 THEN 0 ELSE payment_details.due_amount + $6 END,
			payment_method = EXCLUDED.payment_method;
	`
	dueDelta := batch.TotalAmount.Sub(batch.AmountPaid)
	_, err = tx.Exec(ctx, summaryQuery,
		batch.Party.PartyID, batch.Party.Type, batch.Party.Name,
		batch.TotalAmount, batch.AmountPaid, dueDelta,
		batch.ClampDueToZero, batch.PaymentMethod)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to update balance summary for party "+batch.Party.PartyID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return billNumber, nil
}

// RecordPayment appends a standalone payment and bumps the party's summary.
// A party without a summary row keeps the transaction anyway.
func (r *PgxTransactionRepository) RecordPayment(ctx context.Context, txn domain.Transaction, partyID string, partyType domain.PartyType) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, insertTransactionQuery,
		txn.TransactionID, domain.Day(txn.Date), txn.Party, txn.Type, txn.Item,
		txn.Amount, txn.Payment, txn.Quantity, txn.Price,
		txn.BillNumber, txn.Debit, txn.Credit, txn.CreatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment transaction "+txn.TransactionID, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE payment_details
		SET paid_amount = paid_amount + $2,
		    due_amount = due_amount - $2,
		    payment_method = $3
		WHERE party_id = $1;
	`, partyID, txn.Amount, txn.Payment)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update balance summary for party "+partyID, err)
	}

	return r.Commit(ctx, tx)
}
