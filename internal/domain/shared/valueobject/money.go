package valueobject

import (
	"github.com/shopspring/decimal"
)

// Money is a value object representing monetary amounts.
// All amounts are in the cooperative's single bookkeeping currency, so no
// currency code is carried. It is immutable - all operations return new
// Money instances. Persisted amounts are rounded to 2 decimal places.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a new Money with the specified amount
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// ZeroMoney returns a zero-value Money
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Add returns a new Money with the sum of both amounts
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Round returns a new Money rounded to currency precision (2 decimal places)
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(2)}
}

// Equals returns true if both Money values carry the same amount
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount with fixed currency precision
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
