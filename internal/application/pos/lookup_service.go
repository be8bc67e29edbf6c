package pos

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
)

// LookupService resolves operator input (a scanned barcode or a typed name
// fragment) to a single product snapshot. Both the sale and the return flow
// use the same lookup; only what the result is validated against differs.
type LookupService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewLookupService creates a new LookupService
func NewLookupService(productRepo catalog.ProductRepository, logger *zap.Logger) *LookupService {
	return &LookupService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Lookup finds at most one product for the query: an exact barcode match
// first, then the first product whose name contains the query.
func (s *LookupService) Lookup(ctx context.Context, query string) (*sales.ProductSnapshot, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, shared.NewDomainError("INVALID_QUERY", "Lookup query cannot be empty")
	}

	product, err := s.productRepo.FindByBarcode(ctx, query)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		product, err = s.productRepo.FindFirstByNameContains(ctx, query)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Debug("product lookup",
		zap.String("query", query),
		zap.String("product_id", product.ID.String()),
	)

	snapshot := snapshotFromProduct(product)
	return &snapshot, nil
}

func snapshotFromProduct(product *catalog.Product) sales.ProductSnapshot {
	return sales.ProductSnapshot{
		ID:      product.ID,
		Name:    product.Name,
		Barcode: product.Barcode,
		Price:   product.Price,
		Cost:    product.Cost,
		Stock:   product.Stock,
		Unit:    product.Unit,
	}
}
