package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pos/backend/internal/domain/shared"
)

// SaleRepository defines the interface for sale persistence.
// Sales are immutable once created; there is no update operation.
type SaleRepository interface {
	// Save persists a sale together with its items
	Save(ctx context.Context, sale *Sale) error

	// FindByID finds a sale with its items by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindByIDs finds multiple sales with their items
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Sale, error)

	// FindAll finds sales matching the filter, newest first by default
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)

	// FindBetween finds sales with a date inside [from, to)
	FindBetween(ctx context.Context, from, to time.Time) ([]Sale, error)

	// Count counts sales matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ReturnRecordRepository defines the interface for return link persistence
type ReturnRecordRepository interface {
	// Save persists a return link record
	Save(ctx context.Context, record *ReturnRecord) error

	// FindByOriginalSale finds all return records linked to a sale
	FindByOriginalSale(ctx context.Context, originalSaleID uuid.UUID) ([]ReturnRecord, error)
}
