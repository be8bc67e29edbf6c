package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerEntry(t *testing.T) {
	now := time.Now()
	saleID := uuid.New()

	t.Run("income entry", func(t *testing.T) {
		entry, err := NewIncomeEntry(now, decimal.NewFromFloat(34.50), "Sale", &saleID)
		require.NoError(t, err)

		assert.Equal(t, EntryTypeIncome, entry.Type)
		assert.Equal(t, "34.5", entry.Amount.String())
		assert.True(t, entry.Signed().IsPositive())
		require.NotNil(t, entry.SaleID)
		assert.Equal(t, saleID, *entry.SaleID)
	})

	t.Run("expense entry carries a negative signed amount", func(t *testing.T) {
		entry, err := NewExpenseEntry(now, decimal.NewFromFloat(20), "Refund", &saleID)
		require.NoError(t, err)

		assert.Equal(t, EntryTypeExpense, entry.Type)
		assert.True(t, entry.Amount.IsPositive())
		assert.Equal(t, "-20", entry.Signed().String())
	})

	t.Run("amount is rounded to 2 decimal places", func(t *testing.T) {
		entry, err := NewIncomeEntry(now, decimal.NewFromFloat(10.005), "Sale", nil)
		require.NoError(t, err)
		assert.Equal(t, "10.01", entry.Amount.StringFixed(2))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewIncomeEntry(now, decimal.Zero, "Sale", nil)
		assert.Error(t, err)

		_, err = NewExpenseEntry(now, decimal.NewFromInt(-5), "Refund", nil)
		assert.Error(t, err)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := NewIncomeEntry(now, decimal.NewFromInt(1), "", nil)
		assert.Error(t, err)
	})
}

func TestCashbookEntry(t *testing.T) {
	now := time.Now()

	t.Run("inflow entry", func(t *testing.T) {
		entry, err := NewInflowEntry(now, decimal.NewFromFloat(50), "Cash tendered", nil)
		require.NoError(t, err)

		assert.Equal(t, FlowTypeIn, entry.Type)
		assert.True(t, entry.Signed().IsPositive())
	})

	t.Run("outflow entry carries a negative signed amount", func(t *testing.T) {
		entry, err := NewOutflowEntry(now, decimal.NewFromFloat(20), "Refund paid out", nil)
		require.NoError(t, err)

		assert.Equal(t, FlowTypeOut, entry.Type)
		assert.True(t, entry.Amount.IsPositive())
		assert.True(t, entry.Signed().IsNegative())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewInflowEntry(now, decimal.Zero, "Cash", nil)
		assert.Error(t, err)
	})
}
