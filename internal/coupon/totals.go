package coupon

import "math"

const (
	// Orders at or above this subtotal ship free.
	FreeShippingMin = 49.0
	ShippingFlat    = 5.99
)

// Summary is the order arithmetic for a cart: subtotal, any coupon
// discount, shipping and the final total. Amounts are unrounded;
// Round2 is for display.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Totals derives the summary for a subtotal with an optional applied
// coupon. The total never goes below zero even if a flat discount
// exceeds the subtotal.
func Totals(subtotal float64, applied *Coupon) Summary {
	s := Summary{Subtotal: subtotal}
	if applied != nil {
		s.Discount = applied.DiscountFor(subtotal)
	}
	if subtotal < FreeShippingMin {
		s.Shipping = ShippingFlat
	}
	s.Total = subtotal - s.Discount + s.Shipping
	if s.Total < 0 {
		s.Total = 0
	}
	return s
}

// Round2 rounds to cents for display. Internal accumulation stays
// unrounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns a copy of the summary with every amount rounded to
// cents, for response payloads.
func (s Summary) Rounded() Summary {
	return Summary{
		Subtotal: Round2(s.Subtotal),
		Discount: Round2(s.Discount),
		Shipping: Round2(s.Shipping),
		Total:    Round2(s.Total),
	}
}
