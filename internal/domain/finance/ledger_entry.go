package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/shared"
)

// EntryType classifies a ledger entry
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// LedgerEntry is one immutable bookkeeping row. Amounts are always positive;
// the direction is carried by the entry type. Refunds are recorded as expense
// entries, never as negative income.
type LedgerEntry struct {
	shared.BaseEntity
	Date        time.Time       `gorm:"not null;index"`
	Type        EntryType       `gorm:"type:varchar(10);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	SaleID      *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (LedgerEntry) TableName() string {
	return "ledger"
}

// NewIncomeEntry creates a ledger entry for money earned
func NewIncomeEntry(date time.Time, amount decimal.Decimal, description string, saleID *uuid.UUID) (*LedgerEntry, error) {
	return newLedgerEntry(date, EntryTypeIncome, amount, description, saleID)
}

// NewExpenseEntry creates a ledger entry for money paid out
func NewExpenseEntry(date time.Time, amount decimal.Decimal, description string, saleID *uuid.UUID) (*LedgerEntry, error) {
	return newLedgerEntry(date, EntryTypeExpense, amount, description, saleID)
}

func newLedgerEntry(date time.Time, entryType EntryType, amount decimal.Decimal, description string, saleID *uuid.UUID) (*LedgerEntry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Ledger amount must be positive")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Ledger description cannot be empty")
	}

	return &LedgerEntry{
		BaseEntity:  shared.NewBaseEntity(),
		Date:        date,
		Type:        entryType,
		Amount:      amount.Round(2),
		Description: description,
		SaleID:      saleID,
	}, nil
}

// Signed returns the amount with the sign its type implies, positive for
// income and negative for expense. Summing signed amounts over a period
// yields the net result for that period.
func (e *LedgerEntry) Signed() decimal.Decimal {
	if e.Type == EntryTypeExpense {
		return e.Amount.Neg()
	}
	return e.Amount
}
