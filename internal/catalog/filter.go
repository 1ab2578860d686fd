package catalog

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRating     SortKey = "rating"
	SortNewest     SortKey = "newest"
)

// Query describes one browse request. Zero values mean "no filter":
// empty CategorySlug and Search pass everything, PriceMax <= 0 means no
// upper bound, an empty Brands set disables brand filtering and
// MinRating 0 disables the rating filter.
type Query struct {
	CategorySlug string
	Search       string
	PriceMin     float64
	PriceMax     float64
	Brands       []string
	MinRating    float64
	InStockOnly  bool
	Sort         SortKey
}

// FilterSort applies q to the given products and returns a new ordered
// slice. Filters compose with AND; the input is never modified.
func FilterSort(products []Product, q Query) []Product {
	brandSet := make(map[string]bool, len(q.Brands))
	for _, b := range q.Brands {
		brandSet[b] = true
	}
	search := strings.ToLower(q.Search)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if q.CategorySlug != "" && p.Category.Slug != q.CategorySlug {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			continue
		}
		if p.Price < q.PriceMin {
			continue
		}
		if q.PriceMax > 0 && p.Price > q.PriceMax {
			continue
		}
		if len(brandSet) > 0 && !brandSet[p.Brand] {
			continue
		}
		if q.MinRating > 0 && p.Rating < q.MinRating {
			continue
		}
		if q.InStockOnly && !p.InStock {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortNewest:
		// Partition: isNew products first, otherwise stable. The source
		// storefront has no creation timestamp, so "newest" is a flag
		// partition rather than a chronological sort.
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsNew && !out[j].IsNew })
	}
	return out
}

// FilterSort runs the query against the whole catalog.
func (c *Catalog) FilterSort(q Query) []Product {
	return FilterSort(c.products, q)
}
