package sales

import (
	"time"

	"github.com/google/uuid"

	"github.com/pos/backend/internal/domain/shared"
)

// ReturnRecord links a return transaction back to the sale it refunds.
// The cumulative-refund arithmetic in the eligibility resolver depends on
// every return commit writing exactly one of these rows.
type ReturnRecord struct {
	shared.BaseEntity
	OriginalSaleID uuid.UUID `gorm:"type:uuid;not null;index"`
	ReturnSaleID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Date           time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ReturnRecord) TableName() string {
	return "returns"
}

// NewReturnRecord creates a link between an original sale and its return sale
func NewReturnRecord(originalSaleID, returnSaleID uuid.UUID, date time.Time) (*ReturnRecord, error) {
	if originalSaleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SALE", "Original sale ID cannot be empty")
	}
	if returnSaleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SALE", "Return sale ID cannot be empty")
	}
	if originalSaleID == returnSaleID {
		return nil, shared.NewDomainError("INVALID_SALE", "A return cannot reference itself")
	}

	return &ReturnRecord{
		BaseEntity:     shared.NewBaseEntity(),
		OriginalSaleID: originalSaleID,
		ReturnSaleID:   returnSaleID,
		Date:           date,
	}, nil
}
