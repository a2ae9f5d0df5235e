package repositories

import (
	"context"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
)

// ProductReader defines read operations for the product catalog.
type ProductReader interface {
	// FindProductByID retrieves a specific product by its ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductByItemCode retrieves a product by case-insensitive item code.
	FindProductByItemCode(ctx context.Context, itemCode string) (*domain.Product, error)

	// ListProducts retrieves the whole catalog.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for the product catalog.
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
