package compare

import (
	"sort"

	"github.com/martify/go-storefront/internal/catalog"
)

// Missing marks an attribute a product does not carry.
const Missing = "—"

// defaultKeys is the fallback attribute list used when none of the
// compared products carries structured specifications.
var defaultKeys = []string{"Brand", "Category", "Rating", "Seller", "Warranty"}

// Row is one attribute line of the side-by-side table: the key plus one
// value per compared product, in set order.
type Row struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

// Rows builds the comparison table body. The key set is the union of
// all distinct specification keys across the products, sorted for a
// deterministic layout; products lacking a key show the Missing
// placeholder. When no product has specifications the default key list
// is used instead.
func Rows(products []catalog.Product) []Row {
	seen := make(map[string]bool)
	var keys []string
	for _, p := range products {
		for k := range p.Specifications {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
	} else {
		keys = defaultKeys
	}

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		row := Row{Key: k, Values: make([]string, 0, len(products))}
		for _, p := range products {
			if v, ok := p.Specifications[k]; ok && v != "" {
				row.Values = append(row.Values, v)
			} else {
				row.Values = append(row.Values, Missing)
			}
		}
		rows = append(rows, row)
	}
	return rows
}
