package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/sales"
)

// GormReturnRecordRepository implements ReturnRecordRepository using GORM
type GormReturnRecordRepository struct {
	db *gorm.DB
}

// NewGormReturnRecordRepository creates a new GormReturnRecordRepository
func NewGormReturnRecordRepository(db *gorm.DB) *GormReturnRecordRepository {
	return &GormReturnRecordRepository{db: db}
}

// Save persists a return link record
func (r *GormReturnRecordRepository) Save(ctx context.Context, record *sales.ReturnRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByOriginalSale finds all return records linked to a sale
func (r *GormReturnRecordRepository) FindByOriginalSale(ctx context.Context, originalSaleID uuid.UUID) ([]sales.ReturnRecord, error) {
	var records []sales.ReturnRecord
	if err := r.db.WithContext(ctx).
		Where("original_sale_id = ?", originalSaleID).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Ensure GormReturnRecordRepository implements ReturnRecordRepository
var _ sales.ReturnRecordRepository = (*GormReturnRecordRepository)(nil)
