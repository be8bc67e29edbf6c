package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/shared"
)

// Product represents an item in the cooperative's catalog.
// Stock is mutated only through the commit engines (sale decrement, return
// restore) and through explicit catalog adjustments; it can never go negative.
type Product struct {
	shared.BaseEntity
	Name    string          `gorm:"type:varchar(200);not null"`
	Barcode string          `gorm:"type:varchar(50);uniqueIndex"`
	Price   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"` // Selling price per unit
	Cost    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"` // Purchase cost per unit
	Stock   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Unit    string          `gorm:"type:varchar(20);not null"` // Display unit (e.g. "piece", "kg")
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, barcode, unit string, price, cost decimal.Decimal) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateUnit(unit); err != nil {
		return nil, err
	}
	if barcode != "" && len(barcode) > 50 {
		return nil, shared.NewDomainError("INVALID_BARCODE", "Barcode cannot exceed 50 characters")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Purchase cost cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Barcode:    barcode,
		Price:      price.Round(2),
		Cost:       cost.Round(2),
		Stock:      decimal.Zero,
		Unit:       unit,
	}, nil
}

// Update updates the product's display information
func (p *Product) Update(name, barcode, unit string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateUnit(unit); err != nil {
		return err
	}
	if barcode != "" && len(barcode) > 50 {
		return shared.NewDomainError("INVALID_BARCODE", "Barcode cannot exceed 50 characters")
	}

	p.Name = name
	p.Barcode = barcode
	p.Unit = unit
	p.UpdatedAt = time.Now()

	return nil
}

// SetPrices sets both the selling price and the purchase cost
func (p *Product) SetPrices(price, cost decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Purchase cost cannot be negative")
	}

	p.Price = price.Round(2)
	p.Cost = cost.Round(2)
	p.UpdatedAt = time.Now()

	return nil
}

// DecreaseStock removes quantity from stock.
// Stock is never allowed to go negative; callers must treat the error as a
// rejected operation.
func (p *Product) DecreaseStock(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if quantity.GreaterThan(p.Stock) {
		return shared.ErrInsufficientStock
	}

	p.Stock = p.Stock.Sub(quantity)
	p.UpdatedAt = time.Now()

	return nil
}

// IncreaseStock adds quantity back to stock (return restore, goods received)
func (p *Product) IncreaseStock(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	p.Stock = p.Stock.Add(quantity)
	p.UpdatedAt = time.Now()

	return nil
}

// AdjustStock applies a signed manual correction to stock
func (p *Product) AdjustStock(delta decimal.Decimal) error {
	if delta.IsZero() {
		return shared.NewDomainError("INVALID_QUANTITY", "Adjustment cannot be zero")
	}
	result := p.Stock.Add(delta)
	if result.IsNegative() {
		return shared.ErrInsufficientStock
	}

	p.Stock = result
	p.UpdatedAt = time.Now()

	return nil
}

// HasStockFor reports whether stock covers the requested quantity
func (p *Product) HasStockFor(quantity decimal.Decimal) bool {
	return quantity.LessThanOrEqual(p.Stock)
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validateUnit(unit string) error {
	if unit == "" {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if len(unit) > 20 {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot exceed 20 characters")
	}
	return nil
}
