package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/sabzimandi/mandi_backend/internal/apperrors"
	"github.com/sabzimandi/mandi_backend/internal/cache"
	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	portsrepo "github.com/sabzimandi/mandi_backend/internal/core/ports/repositories"
	portssvc "github.com/sabzimandi/mandi_backend/internal/core/ports/services"
	"github.com/sabzimandi/mandi_backend/internal/dto"
	"github.com/sabzimandi/mandi_backend/internal/middleware"
)

// productService manages the product catalog with a read-through list cache.
type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
	cache       *cache.Cache
	events      portssvc.EventPublisher
}

// NewProductService creates a new ProductService. cache may be nil.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, productCache *cache.Cache, events portssvc.EventPublisher) portssvc.ProductSvcFacade {
	return &productService{
		productRepo: productRepo,
		cache:       productCache,
		events:      events,
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) publish(action, id string) {
	if s.events != nil {
		s.events.Publish(portssvc.ChangeEvent{Collection: "products", Action: action, ID: id})
	}
}

// GetProductByID retrieves a single catalog entry.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

// ListProducts returns the full catalog, served from cache when possible.
func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if data, ok := s.cache.GetProductList(ctx); ok {
		var products []domain.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
		logger.Warn("Discarding undecodable product cache entry")
		s.cache.InvalidateProductList(ctx)
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		s.cache.SetProductList(ctx, data)
	}
	return products, nil
}

// CreateProduct adds a catalog entry. Item codes are unique,
// case-insensitively.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	itemCode := strings.TrimSpace(req.ItemCode)
	existing, err := s.productRepo.FindProductByItemCode(ctx, itemCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for duplicate item code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: product with this item code already exists", apperrors.ErrDuplicate)
	}

	product := domain.Product{
		ProductID: uuid.NewString(),
		ItemCode:  itemCode,
		Name:      strings.TrimSpace(req.Name),
		Rate1:     req.Rate1,
		Rate2:     req.Rate2,
		Rate3:     req.Rate3,
	}
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save product", slog.String("error", err.Error()), slog.String("item_code", itemCode))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.cache.InvalidateProductList(ctx)
	s.publish("create", product.ProductID)
	return &product, nil
}

// UpdateProduct applies a partial update to a catalog entry.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.ItemCode != nil && strings.TrimSpace(*req.ItemCode) != "" {
		itemCode := strings.TrimSpace(*req.ItemCode)
		existing, err := s.productRepo.FindProductByItemCode(ctx, itemCode)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check for duplicate item code: %w", err)
		}
		if existing != nil && existing.ProductID != productID {
			return nil, fmt.Errorf("%w: product with this item code already exists", apperrors.ErrDuplicate)
		}
		product.ItemCode = itemCode
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Rate1 != nil {
		product.Rate1 = *req.Rate1
	}
	if req.Rate2 != nil {
		product.Rate2 = *req.Rate2
	}
	if req.Rate3 != nil {
		product.Rate3 = *req.Rate3
	}

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		logger.Error("Failed to update product", slog.String("error", err.Error()), slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.cache.InvalidateProductList(ctx)
	s.publish("update", productID)
	return product, nil
}

// DeleteProduct removes a catalog entry. Deleting a product that is already
// gone is a no-op.
func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		logger.Error("Failed to delete product", slog.String("error", err.Error()), slog.String("product_id", productID))
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.cache.InvalidateProductList(ctx)
	s.publish("delete", productID)
	return nil
}
