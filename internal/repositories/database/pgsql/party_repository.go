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

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for supplier and customer data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

func scanParty(row pgx.Row) (*domain.Party, error) {
	var p domain.Party
	err := row.Scan(&p.PartyID, &p.Type, &p.Name, &p.Contact, &p.Address, &p.Code)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindPartyByID retrieves a party by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `
		SELECT party_id, party_type, name, contact, address, code
		FROM parties
		WHERE party_id = $1;
	`
	party, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party by ID %s: %w", partyID, err)
	}
	return party, nil
}

// FindPartyByName retrieves a party of one type by case-insensitive name.
func (r *PgxPartyRepository) FindPartyByName(ctx context.Context, partyType domain.PartyType, name string) (*domain.Party, error) {
	query := `
		SELECT party_id, party_type, name, contact, address, code
		FROM parties
		WHERE party_type = $1 AND LOWER(TRIM(name)) = LOWER(TRIM($2))
		LIMIT 1;
	`
	party, err := scanParty(r.Pool.QueryRow(ctx, query, partyType, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party by name %s: %w", name, err)
	}
	return party, nil
}

// ListParties retrieves all parties of one type, sorted by name.
func (r *PgxPartyRepository) ListParties(ctx context.Context, partyType domain.PartyType) ([]domain.Party, error) {
	query := `
		SELECT party_id, party_type, name, contact, address, code
		FROM parties
		WHERE party_type = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, partyType)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Party, error) {
		var p domain.Party
		err := row.Scan(&p.PartyID, &p.Type, &p.Name, &p.Contact, &p.Address, &p.Code)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan parties: %w", err)
	}
	return parties, nil
}

// SaveParty inserts a party together with its zeroed balance summary,
// atomically.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party, summary domain.PaymentDetail) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	partyQuery := `
		INSERT INTO parties (party_id, party_type, name, contact, address, code)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, partyQuery,
		party.PartyID, party.Type, party.Name, party.Contact, party.Address, party.Code)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert party "+party.PartyID, err)
	}

	summaryQuery := `
		INSERT INTO payment_details (party_id, party_type, party_name, total_amount, paid_amount, due_amount, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, summaryQuery,
		summary.PartyID, summary.PartyType, summary.PartyName,
		summary.TotalAmount, summary.PaidAmount, summary.DueAmount, summary.PaymentMethod)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert balance summary for party "+party.PartyID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateParty updates a party and propagates the name to its summary.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE parties
		SET name = $2, contact = $3, address = $4, code = $5
		WHERE party_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		party.PartyID, party.Name, party.Contact, party.Address, party.Code)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update party "+party.PartyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	_, err = tx.Exec(ctx, `UPDATE payment_details SET party_name = $2 WHERE party_id = $1;`,
		party.PartyID, party.Name)
	if err != nil {
		return apperrors.NewAppError(500, "failed to propagate party name to summary "+party.PartyID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteParty removes a party; the balance summary goes with it via the
// foreign key cascade.
func (r *PgxPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM parties WHERE party_id = $1;`, partyID)
	if err != nil {
		return fmt.Errorf("failed to delete party %s: %w", partyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
