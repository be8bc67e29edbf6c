package sales

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pos/backend/internal/domain/shared"
)

func TestNewSale(t *testing.T) {
	now := time.Now()

	t.Run("total equals sum of line amounts", func(t *testing.T) {
		lines := []SaleLine{
			{ProductID: uuid.New(), Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromFloat(10)},
			{ProductID: uuid.New(), Quantity: decimal.NewFromFloat(0.5), UnitPrice: decimal.NewFromFloat(7.99)},
		}

		sale, err := NewSale(now, lines)
		require.NoError(t, err)

		assert.Equal(t, "34.00", sale.Total.StringFixed(2))
		assert.True(t, sale.Total.Equal(sale.ItemsTotal()))
		assert.False(t, sale.IsReturn())
		require.Len(t, sale.Items, 2)
		for _, item := range sale.Items {
			assert.Equal(t, sale.ID, item.SaleID)
			assert.True(t, item.Quantity.IsPositive())
		}
	})

	t.Run("rejects empty line set", func(t *testing.T) {
		_, err := NewSale(now, nil)
		assert.ErrorIs(t, err, shared.ErrEmptyCart)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewSale(now, []SaleLine{
			{ProductID: uuid.New(), Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(1)},
		})
		assert.Error(t, err)
	})

	t.Run("rejects missing product id", func(t *testing.T) {
		_, err := NewSale(now, []SaleLine{
			{ProductID: uuid.Nil, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
		})
		assert.Error(t, err)
	})
}

func TestNewReturnSale(t *testing.T) {
	now := time.Now()
	productID := uuid.New()

	sale, err := NewReturnSale(now, []SaleLine{
		{ProductID: productID, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(10)},
	})
	require.NoError(t, err)

	assert.Equal(t, "-20.00", sale.Total.StringFixed(2))
	assert.True(t, sale.IsReturn())
	require.Len(t, sale.Items, 1)
	assert.True(t, sale.Items[0].Quantity.Equal(decimal.NewFromInt(-2)))
	// Price stays positive; only quantity and total carry the sign.
	assert.True(t, sale.Items[0].Price.IsPositive())
	assert.True(t, sale.Total.Equal(sale.ItemsTotal()))
}

func TestSale_QuantityByProduct(t *testing.T) {
	now := time.Now()
	productID := uuid.New()

	sale, err := NewSale(now, []SaleLine{
		{ProductID: productID, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(5)},
		{ProductID: productID, Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(5)},
	})
	require.NoError(t, err)

	byProduct := sale.QuantityByProduct()
	require.Len(t, byProduct, 1)
	assert.True(t, byProduct[productID].Equal(decimal.NewFromInt(5)))

	prices := sale.PriceByProduct()
	assert.True(t, prices[productID].Equal(decimal.NewFromInt(5)))
}

func TestNewReturnRecord(t *testing.T) {
	t.Run("links original and return sales", func(t *testing.T) {
		original := uuid.New()
		ret := uuid.New()

		record, err := NewReturnRecord(original, ret, time.Now())
		require.NoError(t, err)
		assert.Equal(t, original, record.OriginalSaleID)
		assert.Equal(t, ret, record.ReturnSaleID)
	})

	t.Run("rejects self reference and nil ids", func(t *testing.T) {
		id := uuid.New()
		_, err := NewReturnRecord(id, id, time.Now())
		assert.Error(t, err)

		_, err = NewReturnRecord(uuid.Nil, id, time.Now())
		assert.Error(t, err)

		_, err = NewReturnRecord(id, uuid.Nil, time.Now())
		assert.Error(t, err)
	})
}
