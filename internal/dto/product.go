package dto

import (
	"github.com/sabzimandi/mandi_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the payload for adding a catalog entry.
type CreateProductRequest struct {
	ItemCode string          `json:"itemCode" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Rate1    decimal.Decimal `json:"rate1"`
	Rate2    decimal.Decimal `json:"rate2"`
	Rate3    decimal.Decimal `json:"rate3"`
}

// UpdateProductRequest applies a partial update; nil fields are left unchanged.
type UpdateProductRequest struct {
	ItemCode *string          `json:"itemCode"`
	Name     *string          `json:"name"`
	Rate1    *decimal.Decimal `json:"rate1"`
	Rate2    *decimal.Decimal `json:"rate2"`
	Rate3    *decimal.Decimal `json:"rate3"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID string          `json:"productID"`
	ItemCode  string          `json:"itemCode"`
	Name      string          `json:"name"`
	Rate1     decimal.Decimal `json:"rate1"`
	Rate2     decimal.Decimal `json:"rate2"`
	Rate3     decimal.Decimal `json:"rate3"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		ItemCode:  p.ItemCode,
		Name:      p.Name,
		Rate1:     p.Rate1,
		Rate2:     p.Rate2,
		Rate3:     p.Rate3,
	}
}

// ToProductResponses converts a slice of domain.Product to []ProductResponse.
func ToProductResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
