package catalog

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
)

// ProductService handles catalog management operations
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
	validate    *validator.Validate
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
		validate:    validator.New(),
	}
}

// CreateProduct creates a new product, optionally with an opening stock
// quantity
func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_REQUEST", err.Error())
	}

	if req.Barcode != "" {
		exists, err := s.productRepo.ExistsByBarcode(ctx, req.Barcode)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.ErrAlreadyExists
		}
	}

	product, err := catalog.NewProduct(req.Name, req.Barcode, req.Unit, req.Price, req.Cost)
	if err != nil {
		return nil, err
	}
	if req.Stock.IsPositive() {
		if err := product.IncreaseStock(req.Stock); err != nil {
			return nil, err
		}
	} else if req.Stock.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Opening stock cannot be negative")
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)

	response := toProductResponse(product)
	return &response, nil
}

// UpdateProduct updates a product's display fields
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_REQUEST", err.Error())
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Barcode != "" && req.Barcode != product.Barcode {
		exists, err := s.productRepo.ExistsByBarcode(ctx, req.Barcode)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.ErrAlreadyExists
		}
	}

	if err := product.Update(req.Name, req.Barcode, req.Unit); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := toProductResponse(product)
	return &response, nil
}

// SetPrices updates a product's selling price and cost
func (s *ProductService) SetPrices(ctx context.Context, id uuid.UUID, req SetPricesRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.SetPrices(req.Price, req.Cost); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := toProductResponse(product)
	return &response, nil
}

// AdjustStock applies a signed manual stock correction
func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, req AdjustStockRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.AdjustStock(req.Delta); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("stock adjusted",
		zap.String("product_id", product.ID.String()),
		zap.String("delta", req.Delta.String()),
		zap.String("stock", product.Stock.String()),
	)

	response := toProductResponse(product)
	return &response, nil
}

// GetProduct finds a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := toProductResponse(product)
	return &response, nil
}

// ListProducts finds products matching the filter with the total match count
func (s *ProductService) ListProducts(ctx context.Context, filter shared.Filter) (*ProductListResponse, error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ProductResponse, 0, len(products))
	for idx := range products {
		items = append(items, toProductResponse(&products[idx]))
	}

	return &ProductListResponse{Items: items, Total: total}, nil
}
