package cart

import (
	"encoding/json"

	"github.com/martify/go-storefront/internal/catalog"
)

// snapshotLine is the persisted shape of a ledger line. Only the product
// id and quantity are stored; the product record is re-resolved against
// the catalog on restore.
type snapshotLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Encode serializes the ledger for keyed storage.
func (l *Ledger) Encode() ([]byte, error) {
	lines := make([]snapshotLine, 0, len(l.items))
	for i := range l.items {
		lines = append(lines, snapshotLine{ProductID: l.items[i].Product.ID, Quantity: l.items[i].Quantity})
	}
	return json.Marshal(lines)
}

// Decode rebuilds a ledger from a stored snapshot, validating every line
// against the catalog. Malformed payloads and lines referencing unknown
// products or non-positive quantities are dropped rather than trusted.
func Decode(data []byte, cat *catalog.Catalog) *Ledger {
	l := NewLedger()
	if len(data) == 0 {
		return l
	}
	var lines []snapshotLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return l
	}
	for _, ln := range lines {
		if ln.Quantity < 1 {
			continue
		}
		p, ok := cat.ByID(ln.ProductID)
		if !ok {
			continue
		}
		l.AddItem(p, ln.Quantity)
	}
	return l
}
