package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/config"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(&config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedProduct(t *testing.T, repo *GormProductRepository, name, barcode string, price float64, stock int64) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(name, barcode, "piece", decimal.NewFromFloat(price), decimal.Zero)
	require.NoError(t, err)
	if stock > 0 {
		require.NoError(t, product.IncreaseStock(decimal.NewFromInt(stock)))
	}
	require.NoError(t, repo.Save(context.Background(), product))
	return product
}

func TestGormProductRepository_FindByID(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	t.Run("finds existing product", func(t *testing.T) {
		product := seedProduct(t, repo, "Coffee", "C-001", 8.50, 10)

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
		assert.Equal(t, "Coffee", found.Name)
		assert.True(t, found.Price.Equal(decimal.NewFromFloat(8.50)))
		assert.True(t, found.Stock.Equal(decimal.NewFromInt(10)))
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_FindByBarcode(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	product := seedProduct(t, repo, "Tea", "T-001", 4.00, 5)

	t.Run("finds by exact barcode", func(t *testing.T) {
		found, err := repo.FindByBarcode(ctx, "T-001")
		require.NoError(t, err)
		assert.Equal(t, product.ID, found.ID)
	})

	t.Run("partial barcode does not match", func(t *testing.T) {
		_, err := repo.FindByBarcode(ctx, "T-0")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("rejects empty barcode", func(t *testing.T) {
		_, err := repo.FindByBarcode(ctx, "")
		assert.Error(t, err)
	})
}

func TestGormProductRepository_FindFirstByNameContains(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	seedProduct(t, repo, "Green Tea", "GT-01", 4.00, 5)
	seedProduct(t, repo, "Black Tea", "BT-01", 4.50, 5)

	t.Run("finds a product containing the query", func(t *testing.T) {
		found, err := repo.FindFirstByNameContains(ctx, "Green")
		require.NoError(t, err)
		assert.Equal(t, "Green Tea", found.Name)
	})

	t.Run("returns at most one candidate", func(t *testing.T) {
		found, err := repo.FindFirstByNameContains(ctx, "Tea")
		require.NoError(t, err)
		assert.Contains(t, []string{"Green Tea", "Black Tea"}, found.Name)
	})

	t.Run("returns not found for no match", func(t *testing.T) {
		_, err := repo.FindFirstByNameContains(ctx, "Juice")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_SaveAndDelete(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	t.Run("save persists updates", func(t *testing.T) {
		product := seedProduct(t, repo, "Milk", "M-001", 1.20, 20)

		require.NoError(t, product.DecreaseStock(decimal.NewFromInt(3)))
		require.NoError(t, repo.Save(ctx, product))

		found, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.True(t, found.Stock.Equal(decimal.NewFromInt(17)))
	})

	t.Run("delete removes the product", func(t *testing.T) {
		product := seedProduct(t, repo, "Butter", "B-001", 2.50, 5)

		require.NoError(t, repo.Delete(ctx, product.ID))
		_, err := repo.FindByID(ctx, product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("delete of unknown id is not found", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}

func TestGormProductRepository_FindAllAndCount(t *testing.T) {
	db := newTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	seedProduct(t, repo, "Apple", "F-001", 0.50, 100)
	seedProduct(t, repo, "Banana", "F-002", 0.30, 100)
	seedProduct(t, repo, "Carrot", "V-001", 0.20, 100)

	t.Run("search filters by name or barcode", func(t *testing.T) {
		found, err := repo.FindAll(ctx, shared.Filter{Search: "an"})
		require.NoError(t, err)
		assert.Len(t, found, 1)
		assert.Equal(t, "Banana", found[0].Name)

		count, err := repo.Count(ctx, shared.Filter{Search: "F-0"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("pagination returns stable pages", func(t *testing.T) {
		first, err := repo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 2})
		require.NoError(t, err)
		second, err := repo.FindAll(ctx, shared.Filter{Page: 2, PageSize: 2})
		require.NoError(t, err)

		assert.Len(t, first, 2)
		assert.Len(t, second, 1)
	})

	t.Run("exists by barcode", func(t *testing.T) {
		exists, err := repo.ExistsByBarcode(ctx, "V-001")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByBarcode(ctx, "V-999")
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsByBarcode(ctx, "")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
