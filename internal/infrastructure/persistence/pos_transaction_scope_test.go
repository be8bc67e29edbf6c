package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	apppos "github.com/pos/backend/internal/application/pos"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/finance"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
)

func TestGormTransactionScope_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("commits all writes when the function succeeds", func(t *testing.T) {
		db := newTestDatabase(t)
		scope := NewGormTransactionScope(db.DB)

		product, err := catalog.NewProduct("Coffee", "C-001", "piece", decimal.NewFromFloat(8.00), decimal.Zero)
		require.NoError(t, err)

		err = scope.Execute(ctx, func(repos apppos.TransactionalRepositories) error {
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}
			entry, err := finance.NewIncomeEntry(time.Now(), decimal.NewFromFloat(8.00), "Sale", nil)
			if err != nil {
				return err
			}
			return repos.LedgerRepo().Append(ctx, entry)
		})
		require.NoError(t, err)

		found, err := NewGormProductRepository(db.DB).FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Coffee", found.Name)

		var count int64
		require.NoError(t, db.DB.Table("ledger").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rolls back every write when the function fails", func(t *testing.T) {
		db := newTestDatabase(t)
		scope := NewGormTransactionScope(db.DB)

		product, err := catalog.NewProduct("Coffee", "C-001", "piece", decimal.NewFromFloat(8.00), decimal.Zero)
		require.NoError(t, err)

		failure := errors.New("storage failure after partial writes")
		err = scope.Execute(ctx, func(repos apppos.TransactionalRepositories) error {
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}
			sale, err := sales.NewSale(time.Now(), []sales.SaleLine{
				{ProductID: product.ID, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(8.00)},
			})
			if err != nil {
				return err
			}
			if err := repos.SaleRepo().Save(ctx, sale); err != nil {
				return err
			}
			return failure
		})
		assert.ErrorIs(t, err, failure)

		// Nothing from inside the scope is visible.
		_, err = NewGormProductRepository(db.DB).FindByID(ctx, product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		for _, table := range []string{"products", "sales", "sale_items"} {
			var count int64
			require.NoError(t, db.DB.Table(table).Count(&count).Error)
			assert.Equal(t, int64(0), count, table)
		}
	})
}

// newMockScope creates a GormTransactionScope over a mocked SQL connection
func newMockScope(t *testing.T) (*GormTransactionScope, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormTransactionScope(gormDB), mock, mockDB
}

func TestGormTransactionScope_TransactionBoundary(t *testing.T) {
	ctx := context.Background()

	t.Run("rolls back when the function returns an error", func(t *testing.T) {
		scope, mock, mockDB := newMockScope(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := scope.Execute(ctx, func(repos apppos.TransactionalRepositories) error {
			return errors.New("boom")
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commits when the function succeeds", func(t *testing.T) {
		scope, mock, mockDB := newMockScope(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := scope.Execute(ctx, func(repos apppos.TransactionalRepositories) error {
			return nil
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("surfaces a begin failure", func(t *testing.T) {
		scope, mock, mockDB := newMockScope(t)
		defer mockDB.Close()

		mock.ExpectBegin().WillReturnError(errors.New("connection lost"))

		err := scope.Execute(ctx, func(repos apppos.TransactionalRepositories) error {
			t.Fatal("function must not run when the transaction cannot begin")
			return nil
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
