package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/finance"
)

// GormCashbookRepository implements CashbookRepository using GORM
type GormCashbookRepository struct {
	db *gorm.DB
}

// NewGormCashbookRepository creates a new GormCashbookRepository
func NewGormCashbookRepository(db *gorm.DB) *GormCashbookRepository {
	return &GormCashbookRepository{db: db}
}

// Append persists a new cashbook entry
func (r *GormCashbookRepository) Append(ctx context.Context, entry *finance.CashbookEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindBetween finds entries with a date inside [from, to), oldest first
func (r *GormCashbookRepository) FindBetween(ctx context.Context, from, to time.Time) ([]finance.CashbookEntry, error) {
	var entries []finance.CashbookEntry
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Ensure GormCashbookRepository implements CashbookRepository
var _ finance.CashbookRepository = (*GormCashbookRepository)(nil)
