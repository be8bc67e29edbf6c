package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Add(t *testing.T) {
	a := NewMoney(decimal.NewFromFloat(10.50))
	b := NewMoney(decimal.NewFromFloat(4.25))

	sum := a.Add(b)
	assert.Equal(t, "14.75", sum.String())
	assert.True(t, sum.Equals(NewMoney(decimal.NewFromFloat(14.75))))

	assert.True(t, ZeroMoney().IsZero())
	assert.True(t, ZeroMoney().Add(a).Equals(a))
}

func TestMoney_Round(t *testing.T) {
	t.Run("rounds to currency precision", func(t *testing.T) {
		up, err := decimal.NewFromString("10.005")
		require.NoError(t, err)
		assert.Equal(t, "10.01", NewMoney(up).Round().String())

		down, err := decimal.NewFromString("10.004")
		require.NoError(t, err)
		assert.Equal(t, "10.00", NewMoney(down).Round().String())
	})

	t.Run("amount survives the round trip", func(t *testing.T) {
		m := NewMoney(decimal.NewFromFloat(12.34))
		assert.True(t, m.Round().Amount().Equal(decimal.NewFromFloat(12.34)))
	})
}
