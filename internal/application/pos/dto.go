package pos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/sales"
)

// CartLineInput is one line of a commit request. UnitPrice is the price
// frozen when the line entered the cart; forward sales charge it as given
// and never re-read the catalog, while returns override it with the price
// recorded on the original sale.
type CartLineInput struct {
	ProductID uuid.UUID       `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CartLines converts assembled cart lines into commit request lines,
// carrying the add-time unit price through to the engine.
func CartLines(lines []sales.SaleLine) []CartLineInput {
	out := make([]CartLineInput, 0, len(lines))
	for _, line := range lines {
		out = append(out, CartLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return out
}

// CommitSaleRequest carries everything needed to commit a forward sale.
// Date is optional; the commit time is used when it is zero.
type CommitSaleRequest struct {
	Lines          []CartLineInput `json:"lines" validate:"required,min=1,dive"`
	TenderedAmount decimal.Decimal `json:"tendered_amount"`
	Date           time.Time       `json:"date"`
}

// CommitReturnRequest carries everything needed to commit a return against
// an original sale
type CommitReturnRequest struct {
	OriginalSaleID uuid.UUID       `json:"original_sale_id" validate:"required"`
	Lines          []CartLineInput `json:"lines" validate:"required,min=1,dive"`
	TenderedAmount decimal.Decimal `json:"tendered_amount"`
	Date           time.Time       `json:"date"`
}

// SaleReceipt is the result of a committed forward sale
type SaleReceipt struct {
	SaleID    uuid.UUID       `json:"sale_id"`
	Date      time.Time       `json:"date"`
	Total     decimal.Decimal `json:"total"`
	Tendered  decimal.Decimal `json:"tendered"`
	ChangeDue decimal.Decimal `json:"change_due"`
}

// ReturnReceipt is the result of a committed return
type ReturnReceipt struct {
	ReturnSaleID   uuid.UUID       `json:"return_sale_id"`
	OriginalSaleID uuid.UUID       `json:"original_sale_id"`
	Date           time.Time       `json:"date"`
	RefundTotal    decimal.Decimal `json:"refund_total"`
	Tendered       decimal.Decimal `json:"tendered"`
	ChangeDue      decimal.Decimal `json:"change_due"`
}

// ReturnEligibility is the resolver output for one original sale: what may
// still be refunded per product, at the original sale prices
type ReturnEligibility struct {
	OriginalSaleID uuid.UUID                          `json:"original_sale_id"`
	Lines          map[uuid.UUID]sales.ReturnableLine `json:"lines"`
}

// Remaining returns the remaining returnable quantity for a product,
// zero when the product was not part of the original sale
func (e *ReturnEligibility) Remaining(productID uuid.UUID) decimal.Decimal {
	if line, ok := e.Lines[productID]; ok {
		return line.Remaining
	}
	return decimal.Zero
}
