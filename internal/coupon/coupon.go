package coupon

import (
	"errors"
	"strings"
)

var (
	ErrUnknownCode    = errors.New("invalid coupon code")
	ErrMinOrderNotMet = errors.New("minimum order not met")
)

type Type string

const (
	Percent Type = "percent"
	Flat    Type = "flat"
)

type Coupon struct {
	Code        string  `json:"code"`
	Discount    float64 `json:"discount"`
	Type        Type    `json:"type"`
	MinOrder    float64 `json:"min_order"`
	Description string  `json:"description"`
}

// DiscountFor computes the discount amount the coupon grants on the
// given subtotal. Validity is checked separately via Validate.
func (c Coupon) DiscountFor(subtotal float64) float64 {
	if c.Type == Percent {
		return subtotal * c.Discount / 100
	}
	return c.Discount
}

func (c Coupon) Validate(subtotal float64) error {
	if subtotal < c.MinOrder {
		return ErrMinOrderNotMet
	}
	return nil
}

// Book is the set of redeemable coupon codes. Codes are matched
// case-insensitively; the storefront uppercases user input.
type Book struct {
	byCode map[string]Coupon
}

func NewBook(coupons ...Coupon) *Book {
	b := &Book{byCode: make(map[string]Coupon, len(coupons))}
	for _, c := range coupons {
		b.byCode[strings.ToUpper(c.Code)] = c
	}
	return b
}

func Default() *Book {
	return NewBook(
		Coupon{Code: "WELCOME20", Discount: 20, Type: Percent, MinOrder: 50, Description: "20% off your first order"},
		Coupon{Code: "SAVE10", Discount: 10, Type: Flat, MinOrder: 100, Description: "$10 off on orders above $100"},
	)
}

// Redeem looks the code up and checks it against the subtotal.
func (b *Book) Redeem(code string, subtotal float64) (Coupon, error) {
	c, ok := b.byCode[strings.ToUpper(code)]
	if !ok {
		return Coupon{}, ErrUnknownCode
	}
	if err := c.Validate(subtotal); err != nil {
		return Coupon{}, err
	}
	return c, nil
}
