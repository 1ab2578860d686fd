package cart

import "github.com/martify/go-storefront/internal/catalog"

// Item is one ledger line: a catalog product plus the unit count. The
// product is captured at add-time, so a line reflects the catalog as it
// was when the shopper added it.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Ledger holds the cart lines for one session. At most one line exists
// per product id; insertion order is preserved for rendering.
type Ledger struct {
	items []Item
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// AddItem inserts a line for the product, or bumps the quantity of the
// existing line. Quantities below 1 are treated as 1.
func (l *Ledger) AddItem(p catalog.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range l.items {
		if l.items[i].Product.ID == p.ID {
			l.items[i].Quantity += qty
			return
		}
	}
	l.items = append(l.items, Item{Product: p, Quantity: qty})
}

// UpdateQuantity sets the line quantity, clamped to a minimum of 1.
// Dropping a line is an explicit RemoveItem, never a side effect of a
// quantity change. Unknown product ids are ignored.
func (l *Ledger) UpdateQuantity(productID string, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range l.items {
		if l.items[i].Product.ID == productID {
			l.items[i].Quantity = qty
			return
		}
	}
}

func (l *Ledger) RemoveItem(productID string) {
	for i := range l.items {
		if l.items[i].Product.ID == productID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

func (l *Ledger) Clear() {
	l.items = nil
}

func (l *Ledger) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Empty() bool { return len(l.items) == 0 }

// Subtotal accumulates unrounded; rounding happens at display time only.
func (l *Ledger) Subtotal() float64 {
	var sum float64
	for i := range l.items {
		sum += l.items[i].Product.Price * float64(l.items[i].Quantity)
	}
	return sum
}

// ItemCount is the number of units across all lines, not the number of
// distinct products.
func (l *Ledger) ItemCount() int {
	var n int
	for i := range l.items {
		n += l.items[i].Quantity
	}
	return n
}
