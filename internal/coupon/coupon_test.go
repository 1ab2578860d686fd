package coupon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookRedeem(t *testing.T) {
	b := Default()

	t.Run("percent coupon on qualifying subtotal", func(t *testing.T) {
		c, err := b.Redeem("WELCOME20", 100)
		require.NoError(t, err)
		assert.InDelta(t, 20, c.DiscountFor(100), 1e-9)
	})

	t.Run("code match is case-insensitive", func(t *testing.T) {
		_, err := b.Redeem("welcome20", 100)
		assert.NoError(t, err)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := b.Redeem("NOPE50", 500)
		assert.ErrorIs(t, err, ErrUnknownCode)
	})

	t.Run("subtotal below the minimum", func(t *testing.T) {
		_, err := b.Redeem("WELCOME20", 49.99)
		assert.ErrorIs(t, err, ErrMinOrderNotMet)
	})

	t.Run("flat coupon boundary", func(t *testing.T) {
		_, err := b.Redeem("SAVE10", 99.99)
		assert.ErrorIs(t, err, ErrMinOrderNotMet)

		c, err := b.Redeem("SAVE10", 100)
		require.NoError(t, err)
		assert.InDelta(t, 10, c.DiscountFor(100), 1e-9)
	})
}

func TestTotals(t *testing.T) {
	t.Run("no coupon, below free shipping", func(t *testing.T) {
		s := Totals(30, nil)
		assert.InDelta(t, 30, s.Subtotal, 1e-9)
		assert.InDelta(t, 0, s.Discount, 1e-9)
		assert.InDelta(t, ShippingFlat, s.Shipping, 1e-9)
		assert.InDelta(t, 35.99, s.Total, 1e-9)
	})

	t.Run("free shipping at the threshold", func(t *testing.T) {
		s := Totals(FreeShippingMin, nil)
		assert.InDelta(t, 0, s.Shipping, 1e-9)
	})

	t.Run("percent coupon applies to the subtotal", func(t *testing.T) {
		c := Coupon{Code: "WELCOME20", Discount: 20, Type: Percent, MinOrder: 50}
		s := Totals(100, &c)
		assert.InDelta(t, 20, s.Discount, 1e-9)
		assert.InDelta(t, 80, s.Total, 1e-9)
	})

	t.Run("total never goes negative", func(t *testing.T) {
		c := Coupon{Code: "BIG", Discount: 500, Type: Flat}
		s := Totals(20, &c)
		assert.InDelta(t, 0, s.Total, 1e-9)
	})
}

func TestRounding(t *testing.T) {
	assert.InDelta(t, 10.56, Round2(10.555), 1e-9)
	assert.InDelta(t, 10.55, Round2(10.554), 1e-9)

	s := Summary{Subtotal: 10.999, Discount: 1.001, Shipping: 5.994, Total: 15.992}.Rounded()
	assert.InDelta(t, 11.00, s.Subtotal, 1e-9)
	assert.InDelta(t, 1.00, s.Discount, 1e-9)
	assert.InDelta(t, 5.99, s.Shipping, 1e-9)
	assert.InDelta(t, 15.99, s.Total, 1e-9)
}
