package services

import (
	"context"

	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	"github.com/sabzimandi/mandi_backend/internal/dto"
)

// ProductReaderSvc defines read operations for the product catalog.
type ProductReaderSvc interface {
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for the product catalog.
type ProductWriterSvc interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductSvcFacade combines all product-related service interfaces.
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
