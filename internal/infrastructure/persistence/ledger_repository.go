package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/finance"
)

// GormLedgerRepository implements LedgerRepository using GORM
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Append persists a new ledger entry
func (r *GormLedgerRepository) Append(ctx context.Context, entry *finance.LedgerEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindBetween finds entries with a date inside [from, to), oldest first
func (r *GormLedgerRepository) FindBetween(ctx context.Context, from, to time.Time) ([]finance.LedgerEntry, error) {
	var entries []finance.LedgerEntry
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Ensure GormLedgerRepository implements LedgerRepository
var _ finance.LedgerRepository = (*GormLedgerRepository)(nil)
