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

// ReturnService resolves what may still be refunded against an original sale
// and commits returns. A return is persisted as a sale with negated
// quantities and total, plus a link row back to the original sale; the link
// rows are what the resolver aggregates to cap repeated partial returns.
type ReturnService struct {
	scope       TransactionScope
	productRepo catalog.ProductRepository
	saleRepo    sales.SaleRepository
	returnRepo  sales.ReturnRecordRepository
	logger      *zap.Logger
	validate    *validator.Validate
}

// NewReturnService creates a new ReturnService
func NewReturnService(
	scope TransactionScope,
	productRepo catalog.ProductRepository,
	saleRepo sales.SaleRepository,
	returnRepo sales.ReturnRecordRepository,
	logger *zap.Logger,
) *ReturnService {
	return &ReturnService{
		scope:       scope,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		returnRepo:  returnRepo,
		logger:      logger,
		validate:    validator.New(),
	}
}

// ResolveEligibility computes, per product of the original sale, the quantity
// that may still be refunded and the unit price it will be refunded at. The
// result is computed fresh from persisted state on every call, never cached,
// so a return committed in between is always reflected.
func (s *ReturnService) ResolveEligibility(ctx context.Context, originalSaleID uuid.UUID) (*ReturnEligibility, error) {
	return resolveEligibility(ctx, s.productRepo, s.saleRepo, s.returnRepo, originalSaleID)
}

// CommitReturn validates the return lines against the remaining returnable
// quantities of the original sale and persists the return atomically: the
// negative sale with its items, the stock restorations, one ledger expense
// entry, one cashbook outflow entry and the link to the original sale.
func (s *ReturnService) CommitReturn(ctx context.Context, req CommitReturnRequest) (*ReturnReceipt, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_REQUEST", err.Error())
	}
	if req.OriginalSaleID == uuid.Nil {
		return nil, shared.ErrNoSaleContext
	}

	merged, err := mergeLines(req.Lines)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	var receipt *ReturnReceipt
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		// Re-resolve inside the transaction so the ceiling reflects every
		// return committed up to this point.
		eligibility, err := resolveEligibility(ctx, repos.ProductRepo(), repos.SaleRepo(), repos.ReturnRepo(), req.OriginalSaleID)
		if err != nil {
			return err
		}

		lines := make([]sales.SaleLine, 0, len(merged))
		for _, input := range merged {
			line, ok := eligibility.Lines[input.ProductID]
			if !ok || input.Quantity.GreaterThan(line.Remaining) {
				return shared.ErrExceedsReturnable
			}
			// Refund at the recorded sale price, not the catalog price.
			lines = append(lines, sales.SaleLine{
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
				UnitPrice: line.UnitPrice,
			})
		}

		returnSale, err := sales.NewReturnSale(date, lines)
		if err != nil {
			return err
		}

		refund := returnSale.Total.Neg()
		if req.TenderedAmount.LessThan(refund) {
			return shared.ErrInsufficientPayment
		}

		if err := repos.SaleRepo().Save(ctx, returnSale); err != nil {
			return err
		}

		products, err := loadProducts(ctx, repos, productIDs(merged))
		if err != nil {
			return err
		}
		for _, input := range merged {
			product := products[input.ProductID]
			if err := product.IncreaseStock(input.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}
		}

		if err := appendReturnBookEntries(ctx, repos, returnSale, req.OriginalSaleID, refund); err != nil {
			return err
		}

		record, err := sales.NewReturnRecord(req.OriginalSaleID, returnSale.ID, date)
		if err != nil {
			return err
		}
		if err := repos.ReturnRepo().Save(ctx, record); err != nil {
			return err
		}

		receipt = &ReturnReceipt{
			ReturnSaleID:   returnSale.ID,
			OriginalSaleID: req.OriginalSaleID,
			Date:           returnSale.Date,
			RefundTotal:    refund,
			Tendered:       req.TenderedAmount,
			ChangeDue:      req.TenderedAmount.Sub(refund).Round(2),
		}
		return nil
	})
	if err != nil {
		return nil, wrapCommitError(err)
	}

	s.logger.Info("return committed",
		zap.String("return_sale_id", receipt.ReturnSaleID.String()),
		zap.String("original_sale_id", receipt.OriginalSaleID.String()),
		zap.String("refund_total", receipt.RefundTotal.StringFixed(2)),
	)

	return receipt, nil
}

func resolveEligibility(
	ctx context.Context,
	productRepo catalog.ProductRepository,
	saleRepo sales.SaleRepository,
	returnRepo sales.ReturnRecordRepository,
	originalSaleID uuid.UUID,
) (*ReturnEligibility, error) {
	if originalSaleID == uuid.Nil {
		return nil, shared.ErrNoSaleContext
	}

	original, err := saleRepo.FindByID(ctx, originalSaleID)
	if err != nil {
		return nil, err
	}
	if original.IsReturn() {
		return nil, shared.NewDomainError("NOT_RETURNABLE", "A return transaction cannot itself be returned")
	}

	remaining := original.QuantityByProduct()
	prices := original.PriceByProduct()

	records, err := returnRepo.FindByOriginalSale(ctx, originalSaleID)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 {
		ids := make([]uuid.UUID, 0, len(records))
		for _, record := range records {
			ids = append(ids, record.ReturnSaleID)
		}
		returnSales, err := saleRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		// Return sale quantities are negative, so adding them subtracts
		// what was already refunded.
		for _, returnSale := range returnSales {
			for productID, qty := range returnSale.QuantityByProduct() {
				remaining[productID] = remaining[productID].Add(qty)
			}
		}
	}

	eligibility := &ReturnEligibility{
		OriginalSaleID: originalSaleID,
		Lines:          make(map[uuid.UUID]sales.ReturnableLine),
	}

	ids := make([]uuid.UUID, 0, len(remaining))
	for productID, qty := range remaining {
		if qty.IsPositive() {
			ids = append(ids, productID)
		}
	}
	if len(ids) == 0 {
		return eligibility, nil
	}

	products, err := productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]*catalog.Product, len(products))
	for idx := range products {
		names[products[idx].ID] = &products[idx]
	}

	for _, productID := range ids {
		line := sales.ReturnableLine{
			ProductID: productID,
			Remaining: remaining[productID],
			UnitPrice: prices[productID],
		}
		if product, ok := names[productID]; ok {
			line.Name = product.Name
			line.Unit = product.Unit
		}
		eligibility.Lines[productID] = line
	}

	return eligibility, nil
}

// appendReturnBookEntries writes the expense and outflow rows for a committed
// return, both for the positive refund total.
func appendReturnBookEntries(
	ctx context.Context,
	repos TransactionalRepositories,
	returnSale *sales.Sale,
	originalSaleID uuid.UUID,
	refund decimal.Decimal,
) error {
	description := fmt.Sprintf("Return for sale %s", originalSaleID)

	expense, err := finance.NewExpenseEntry(returnSale.Date, refund, description, &returnSale.ID)
	if err != nil {
		return err
	}
	if err := repos.LedgerRepo().Append(ctx, expense); err != nil {
		return err
	}

	outflow, err := finance.NewOutflowEntry(returnSale.Date, refund, description, &returnSale.ID)
	if err != nil {
		return err
	}
	return repos.CashbookRepo().Append(ctx, outflow)
}
