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

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for the product catalog.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, item_code, name, rate1, rate2, rate3`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ProductID, &p.ItemCode, &p.Name, &p.Rate1, &p.Rate2, &p.Rate3)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	product, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	return product, nil
}

// FindProductByItemCode retrieves a product by case-insensitive item code.
func (r *PgxProductRepository) FindProductByItemCode(ctx context.Context, itemCode string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE LOWER(item_code) = LOWER($1) LIMIT 1;`
	product, err := scanProduct(r.Pool.QueryRow(ctx, query, itemCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by item code %s: %w", itemCode, err)
	}
	return product, nil
}

// ListProducts retrieves the whole catalog, sorted by item code.
func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY item_code;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		var p domain.Product
		err := row.Scan(&p.ProductID, &p.ItemCode, &p.Name, &p.Rate1, &p.Rate2, &p.Rate3)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return products, nil
}

// SaveProduct inserts a product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		product.ProductID, product.ItemCode, product.Name,
		product.Rate1, product.Rate2, product.Rate3)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert product %s: %w", product.ProductID, err)
	}
	return nil
}

// UpdateProduct updates a product.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET item_code = $2, name = $3, rate1 = $4, rate2 = $5, rate3 = $6
		WHERE product_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		product.ProductID, product.ItemCode, product.Name,
		product.Rate1, product.Rate2, product.Rate3)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
