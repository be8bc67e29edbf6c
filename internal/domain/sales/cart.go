package sales

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/shared/valueobject"
)

// ProductSnapshot carries the catalog fields the cart needs at add time.
// The unit price is frozen into the line when it is first added and is not
// re-read from the catalog afterwards.
type ProductSnapshot struct {
	ID      uuid.UUID
	Name    string
	Barcode string
	Price   decimal.Decimal
	Cost    decimal.Decimal
	Stock   decimal.Decimal
	Unit    string
}

// ReturnableLine describes what may still be refunded for one product of an
// original sale: the remaining quantity and the unit price recorded at sale
// time. Refunds always use this price, never the current catalog price.
type ReturnableLine struct {
	ProductID uuid.UUID
	Name      string
	Unit      string
	Remaining decimal.Decimal
	UnitPrice decimal.Decimal
}

// CartLine is one transient line of a cart
type CartLine struct {
	ProductID uuid.UUID
	Name      string
	Unit      string
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal

	limit decimal.Decimal // max combined quantity (stock or remaining returnable)
}

// Amount returns the line amount (quantity x unit price)
func (l CartLine) Amount() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// Cart is the in-memory collection of lines being assembled before a commit.
// A sale cart validates combined quantities against live stock; a return cart
// validates them against the remaining returnable quantity of its original
// sale and refuses any line without that context.
type Cart struct {
	lines          []CartLine
	originalSaleID uuid.UUID
	eligibility    map[uuid.UUID]ReturnableLine
	forReturn      bool
}

// NewSaleCart creates an empty cart for a forward sale
func NewSaleCart() *Cart {
	return &Cart{lines: make([]CartLine, 0)}
}

// NewReturnCart creates an empty cart bound to an original sale's eligibility.
// Lines can only be added for products with remaining returnable quantity.
func NewReturnCart(originalSaleID uuid.UUID, eligibility map[uuid.UUID]ReturnableLine) *Cart {
	return &Cart{
		lines:          make([]CartLine, 0),
		originalSaleID: originalSaleID,
		eligibility:    eligibility,
		forReturn:      true,
	}
}

// OriginalSaleID returns the sale a return cart refunds against
func (c *Cart) OriginalSaleID() uuid.UUID {
	return c.originalSaleID
}

// IsReturn reports whether this cart assembles a return
func (c *Cart) IsReturn() bool {
	return c.forReturn
}

// Add puts quantity of a product into the cart. If a line for the product
// already exists the quantities are merged, and the combined quantity is what
// gets validated against the limit, so an over-limit increment is rejected
// even when the increment alone would fit.
func (c *Cart) Add(product ProductSnapshot, quantity decimal.Decimal) error {
	if product.ID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	name := product.Name
	unit := product.Unit
	price := product.Price
	limit := product.Stock

	if c.forReturn {
		if c.originalSaleID == uuid.Nil || c.eligibility == nil {
			return shared.ErrNoSaleContext
		}
		line, ok := c.eligibility[product.ID]
		if !ok {
			return shared.ErrExceedsReturnable
		}
		// Refund at the original sale price regardless of the catalog.
		price = line.UnitPrice
		limit = line.Remaining
		if line.Name != "" {
			name = line.Name
		}
		if line.Unit != "" {
			unit = line.Unit
		}
	}

	combined := quantity
	if existing := c.find(product.ID); existing != nil {
		combined = existing.Quantity.Add(quantity)
		if combined.GreaterThan(limit) {
			return c.limitError()
		}
		existing.Quantity = combined
		existing.limit = limit
		return nil
	}

	if combined.GreaterThan(limit) {
		return c.limitError()
	}

	c.lines = append(c.lines, CartLine{
		ProductID: product.ID,
		Name:      name,
		Unit:      unit,
		UnitPrice: price,
		Quantity:  quantity,
		limit:     limit,
	})

	return nil
}

// Adjust changes an existing line's quantity by a signed delta.
// A resulting quantity of zero or below removes the line entirely.
func (c *Cart) Adjust(productID uuid.UUID, delta decimal.Decimal) error {
	line := c.find(productID)
	if line == nil {
		return shared.ErrNotFound
	}

	result := line.Quantity.Add(delta)
	if result.LessThanOrEqual(decimal.Zero) {
		return c.Remove(productID)
	}
	if result.GreaterThan(line.limit) {
		return c.limitError()
	}

	line.Quantity = result
	return nil
}

// Remove deletes a line from the cart
func (c *Cart) Remove(productID uuid.UUID) error {
	for idx, line := range c.lines {
		if line.ProductID == productID {
			c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

// Clear drops every line
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the lines in insertion order
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// SaleLines converts the cart into commit engine input
func (c *Cart) SaleLines() []SaleLine {
	out := make([]SaleLine, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, SaleLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return out
}

// Total returns the cart total rounded to 2 decimal places
func (c *Cart) Total() valueobject.Money {
	total := valueobject.ZeroMoney()
	for _, line := range c.lines {
		total = total.Add(valueobject.NewMoney(line.Amount()))
	}
	return total.Round()
}

func (c *Cart) find(productID uuid.UUID) *CartLine {
	for idx := range c.lines {
		if c.lines[idx].ProductID == productID {
			return &c.lines[idx]
		}
	}
	return nil
}

func (c *Cart) limitError() error {
	if c.forReturn {
		return shared.ErrExceedsReturnable
	}
	return shared.ErrInsufficientStock
}
