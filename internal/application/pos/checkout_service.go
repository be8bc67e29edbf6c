package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
)

// CheckoutService commits forward sales. One commit atomically writes the
// sale header with its items, the stock decrements, one ledger income entry
// and one cashbook inflow entry; on any failure none of them are visible.
type CheckoutService struct {
	scope    TransactionScope
	logger   *zap.Logger
	validate *validator.Validate
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(scope TransactionScope, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		scope:    scope,
		logger:   logger,
		validate: validator.New(),
	}
}

// CommitSale validates the cart lines against live stock and the tendered
// amount against the total, then persists the sale atomically. Each line is
// charged at its own unit price, the one frozen when it entered the cart;
// the live catalog price only governs stock, never the amount. Duplicate
// lines for one product are merged before validation.
func (s *CheckoutService) CommitSale(ctx context.Context, req CommitSaleRequest) (*SaleReceipt, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_REQUEST", err.Error())
	}

	merged, err := mergeLines(req.Lines)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	var receipt *SaleReceipt
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		products, err := loadProducts(ctx, repos, productIDs(merged))
		if err != nil {
			return err
		}

		lines := make([]sales.SaleLine, 0, len(merged))
		for _, input := range merged {
			lines = append(lines, sales.SaleLine{
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
				UnitPrice: input.UnitPrice,
			})
		}

		sale, err := sales.NewSale(date, lines)
		if err != nil {
			return err
		}
		if req.TenderedAmount.LessThan(sale.Total) {
			return shared.ErrInsufficientPayment
		}

		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}

		for _, input := range merged {
			product := products[input.ProductID]
			if err := product.DecreaseStock(input.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}
		}

		if err := appendSaleBookEntries(ctx, repos, sale); err != nil {
			return err
		}

		receipt = &SaleReceipt{
			SaleID:    sale.ID,
			Date:      sale.Date,
			Total:     sale.Total,
			Tendered:  req.TenderedAmount,
			ChangeDue: req.TenderedAmount.Sub(sale.Total).Round(2),
		}
		return nil
	})
	if err != nil {
		return nil, wrapCommitError(err)
	}

	s.logger.Info("sale committed",
		zap.String("sale_id", receipt.SaleID.String()),
		zap.String("total", receipt.Total.StringFixed(2)),
		zap.Int("lines", len(merged)),
	)

	return receipt, nil
}

// mergeLines folds duplicate product lines into one, summing quantities, so
// validation always sees the combined quantity per product. Input order of
// first appearance is preserved. Duplicate lines must agree on the unit
// price; a cart only ever holds one price per product.
func mergeLines(inputs []CartLineInput) ([]CartLineInput, error) {
	merged := make([]CartLineInput, 0, len(inputs))
	index := make(map[uuid.UUID]int, len(inputs))

	for _, input := range inputs {
		if input.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
		}
		if input.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		if input.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
		}
		if at, ok := index[input.ProductID]; ok {
			if !merged[at].UnitPrice.Equal(input.UnitPrice) {
				return nil, shared.NewDomainError("INVALID_PRICE", "Conflicting unit prices for one product")
			}
			merged[at].Quantity = merged[at].Quantity.Add(input.Quantity)
			continue
		}
		index[input.ProductID] = len(merged)
		merged = append(merged, input)
	}

	return merged, nil
}

func productIDs(lines []CartLineInput) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	return ids
}

// loadProducts fetches all referenced products within the transaction and
// fails with not found when any of them is missing.
func loadProducts(ctx context.Context, repos TransactionalRepositories, ids []uuid.UUID) (map[uuid.UUID]*catalog.Product, error) {
	found, err := repos.ProductRepo().FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make(map[uuid.UUID]*catalog.Product, len(found))
	for idx := range found {
		products[found[idx].ID] = &found[idx]
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, shared.ErrNotFound
		}
	}
	return products, nil
}

// appendSaleBookEntries writes the income and inflow rows for a committed
// forward sale, both for the sale total.
func appendSaleBookEntries(ctx context.Context, repos TransactionalRepositories, sale *sales.Sale) error {
	description := fmt.Sprintf("Sale %s", sale.ID)

	income, err := finance.NewIncomeEntry(sale.Date, sale.Total, description, &sale.ID)
	if err != nil {
		return err
	}
	if err := repos.LedgerRepo().Append(ctx, income); err != nil {
		return err
	}

	inflow, err := finance.NewInflowEntry(sale.Date, sale.Total, description, &sale.ID)
	if err != nil {
		return err
	}
	return repos.CashbookRepo().Append(ctx, inflow)
}

// wrapCommitError lets domain errors pass through untouched and reports any
// other failure inside the transactional boundary as a failed commit with the
// cause attached.
func wrapCommitError(err error) error {
	if _, ok := shared.IsDomainError(err); ok {
		return err
	}
	return fmt.Errorf("%w: %v", shared.ErrCommitFailed, err)
}
