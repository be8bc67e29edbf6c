package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/catalog"
)

// CreateProductRequest carries the fields for a new catalog product
type CreateProductRequest struct {
	Name    string          `json:"name" validate:"required,max=200"`
	Barcode string          `json:"barcode" validate:"omitempty,max=50"`
	Unit    string          `json:"unit" validate:"required,max=20"`
	Price   decimal.Decimal `json:"price"`
	Cost    decimal.Decimal `json:"cost"`
	Stock   decimal.Decimal `json:"stock"`
}

// UpdateProductRequest carries the editable fields of an existing product.
// Stock is not edited here; it moves through sale and return commits or an
// explicit adjustment.
type UpdateProductRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Barcode string `json:"barcode" validate:"omitempty,max=50"`
	Unit    string `json:"unit" validate:"required,max=20"`
}

// SetPricesRequest updates a product's selling price and cost
type SetPricesRequest struct {
	Price decimal.Decimal `json:"price"`
	Cost  decimal.Decimal `json:"cost"`
}

// AdjustStockRequest changes a product's stock by a signed delta
type AdjustStockRequest struct {
	Delta decimal.Decimal `json:"delta" validate:"required"`
}

// ProductResponse represents a product in service responses
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Barcode   string          `json:"barcode"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	Stock     decimal.Decimal `json:"stock"`
	Unit      string          `json:"unit"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse is a page of products with the total match count
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int64             `json:"total"`
}

func toProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Barcode:   product.Barcode,
		Price:     product.Price,
		Cost:      product.Cost,
		Stock:     product.Stock,
		Unit:      product.Unit,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}
