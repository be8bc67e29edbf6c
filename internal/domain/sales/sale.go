package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/shared"
)

// SaleItem is one line of a persisted sale. Quantity and the stored sale
// total are positive for a forward sale and negative for a return; Price is
// always the positive unit price captured at transaction time.
type SaleItem struct {
	shared.BaseEntity
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// Amount returns the signed line amount (quantity x price)
func (i SaleItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.Price)
}

// Sale is a committed transaction. A return is stored as a sale with negated
// total and negated item quantities, so reports summing sale totals net out
// refunds without special cases.
type Sale struct {
	shared.BaseEntity
	Date  time.Time       `gorm:"not null;index"`
	Total decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Items []SaleItem      `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// SaleLine is the input for building a sale or return: a positive quantity of
// a product at the unit price captured when the line was added.
type SaleLine struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// NewSale creates a forward sale from cart lines.
// Total is the 2-decimal rounded sum of quantity x unit price over all lines.
func NewSale(date time.Time, lines []SaleLine) (*Sale, error) {
	return build(date, lines, false)
}

// NewReturnSale creates a return transaction from cart lines.
// Item quantities and the total are negated; prices stay positive.
func NewReturnSale(date time.Time, lines []SaleLine) (*Sale, error) {
	return build(date, lines, true)
}

func build(date time.Time, lines []SaleLine, negate bool) (*Sale, error) {
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}

	sale := &Sale{
		BaseEntity: shared.NewBaseEntity(),
		Date:       date,
		Items:      make([]SaleItem, 0, len(lines)),
	}

	total := decimal.Zero
	for _, line := range lines {
		if line.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		if line.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
		}

		qty := line.Quantity
		if negate {
			qty = qty.Neg()
		}
		sale.Items = append(sale.Items, SaleItem{
			BaseEntity: shared.NewBaseEntity(),
			SaleID:     sale.ID,
			ProductID:  line.ProductID,
			Quantity:   qty,
			Price:      line.UnitPrice,
		})
		total = total.Add(line.Quantity.Mul(line.UnitPrice))
	}

	total = total.Round(2)
	if negate {
		total = total.Neg()
	}
	sale.Total = total

	return sale, nil
}

// IsReturn reports whether this sale records a return
func (s *Sale) IsReturn() bool {
	return s.Total.IsNegative()
}

// ItemsTotal returns the signed sum of line amounts, rounded to 2 decimals.
// It always equals Total for a sale built through NewSale/NewReturnSale.
func (s *Sale) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Amount())
	}
	return total.Round(2)
}

// QuantityByProduct groups item quantities per product.
// For a forward sale the values are positive purchased quantities; for a
// return they are negative.
func (s *Sale) QuantityByProduct() map[uuid.UUID]decimal.Decimal {
	result := make(map[uuid.UUID]decimal.Decimal, len(s.Items))
	for _, item := range s.Items {
		result[item.ProductID] = result[item.ProductID].Add(item.Quantity)
	}
	return result
}

// PriceByProduct maps each product in the sale to its recorded unit price
func (s *Sale) PriceByProduct() map[uuid.UUID]decimal.Decimal {
	result := make(map[uuid.UUID]decimal.Decimal, len(s.Items))
	for _, item := range s.Items {
		result[item.ProductID] = item.Price
	}
	return result
}
