package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/shared"
)

// FlowType classifies a cashbook entry by the direction cash moved
type FlowType string

const (
	FlowTypeIn  FlowType = "in"
	FlowTypeOut FlowType = "out"
)

// CashbookEntry records physical cash moving through the drawer. A sale
// commit writes one inflow for the sale total and a return commit writes one
// outflow for the refund total; change handed back is not booked separately.
type CashbookEntry struct {
	shared.BaseEntity
	Date        time.Time       `gorm:"not null;index"`
	Type        FlowType        `gorm:"type:varchar(5);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	SaleID      *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (CashbookEntry) TableName() string {
	return "cashbook"
}

// NewInflowEntry creates a cashbook entry for cash received
func NewInflowEntry(date time.Time, amount decimal.Decimal, description string, saleID *uuid.UUID) (*CashbookEntry, error) {
	return newCashbookEntry(date, FlowTypeIn, amount, description, saleID)
}

// NewOutflowEntry creates a cashbook entry for cash handed out
func NewOutflowEntry(date time.Time, amount decimal.Decimal, description string, saleID *uuid.UUID) (*CashbookEntry, error) {
	return newCashbookEntry(date, FlowTypeOut, amount, description, saleID)
}

func newCashbookEntry(date time.Time, flowType FlowType, amount decimal.Decimal, description string, saleID *uuid.UUID) (*CashbookEntry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Cashbook amount must be positive")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Cashbook description cannot be empty")
	}

	return &CashbookEntry{
		BaseEntity:  shared.NewBaseEntity(),
		Date:        date,
		Type:        flowType,
		Amount:      amount.Round(2),
		Description: description,
		SaleID:      saleID,
	}, nil
}

// Signed returns the amount with the sign its direction implies
func (e *CashbookEntry) Signed() decimal.Decimal {
	if e.Type == FlowTypeOut {
		return e.Amount.Neg()
	}
	return e.Amount
}
