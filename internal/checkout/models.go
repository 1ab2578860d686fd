package checkout

import "time"

type Order struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"` // display order number, e.g. MTF-3F9A2C
	UserID        string    `json:"user_id"`
	Status        Status    `json:"status"`
	Subtotal      float64   `json:"subtotal"`
	Discount      float64   `json:"discount"`
	Shipping      float64   `json:"shipping"`
	Total         float64   `json:"total"`
	CouponCode    string    `json:"coupon_code,omitempty"`
	PaymentMethod string    `json:"payment_method"`
	Address       Address   `json:"address"`
	PlacedAt      time.Time `json:"placed_at"`
}

type OrderItem struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
}
