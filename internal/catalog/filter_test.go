package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []Product {
	electronics := Category{ID: "1", Name: "Electronics", Slug: "electronics"}
	books := Category{ID: "2", Name: "Books", Slug: "books"}
	return []Product{
		{ID: "a", Name: "Aurora Headphones", Brand: "Sonic", Category: electronics, Price: 120, Rating: 4.7, InStock: true},
		{ID: "b", Name: "Budget Earbuds", Brand: "Sonic", Category: electronics, Price: 25, Rating: 3.9, InStock: false},
		{ID: "c", Name: "Clean Code Stories", Brand: "Press", Category: books, Price: 40, Rating: 4.8, InStock: true, IsNew: true},
		{ID: "d", Name: "Desk Lamp", Brand: "Lumen", Category: electronics, Price: 40, Rating: 4.2, InStock: true},
	}
}

func idsOf(ps []Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterSort_Filters(t *testing.T) {
	ps := fixtureProducts()

	t.Run("zero query passes everything in order", func(t *testing.T) {
		got := FilterSort(ps, Query{})
		assert.Equal(t, []string{"a", "b", "c", "d"}, idsOf(got))
	})

	t.Run("category", func(t *testing.T) {
		got := FilterSort(ps, Query{CategorySlug: "books"})
		assert.Equal(t, []string{"c"}, idsOf(got))
	})

	t.Run("search matches name or brand, case-insensitive", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, idsOf(FilterSort(ps, Query{Search: "sonic"})))
		assert.Equal(t, []string{"d"}, idsOf(FilterSort(ps, Query{Search: "LAMP"})))
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		got := FilterSort(ps, Query{PriceMin: 40, PriceMax: 120})
		assert.Equal(t, []string{"a", "c", "d"}, idsOf(got))
	})

	t.Run("non-positive price max means unbounded", func(t *testing.T) {
		got := FilterSort(ps, Query{PriceMin: 100, PriceMax: 0})
		assert.Equal(t, []string{"a"}, idsOf(got))
	})

	t.Run("brand set is an OR", func(t *testing.T) {
		got := FilterSort(ps, Query{Brands: []string{"Sonic", "Lumen"}})
		assert.Equal(t, []string{"a", "b", "d"}, idsOf(got))
	})

	t.Run("min rating", func(t *testing.T) {
		got := FilterSort(ps, Query{MinRating: 4.5})
		assert.Equal(t, []string{"a", "c"}, idsOf(got))
	})

	t.Run("in stock only", func(t *testing.T) {
		got := FilterSort(ps, Query{InStockOnly: true})
		assert.Equal(t, []string{"a", "c", "d"}, idsOf(got))
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		got := FilterSort(ps, Query{CategorySlug: "electronics", InStockOnly: true, MinRating: 4.5})
		assert.Equal(t, []string{"a"}, idsOf(got))
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		_ = FilterSort(ps, Query{Sort: SortPriceHigh})
		assert.Equal(t, []string{"a", "b", "c", "d"}, idsOf(ps))
	})
}

func TestFilterSort_Sorts(t *testing.T) {
	ps := fixtureProducts()

	t.Run("price low to high keeps ties stable", func(t *testing.T) {
		got := FilterSort(ps, Query{Sort: SortPriceLow})
		assert.Equal(t, []string{"b", "c", "d", "a"}, idsOf(got))
	})

	t.Run("price high to low", func(t *testing.T) {
		got := FilterSort(ps, Query{Sort: SortPriceHigh})
		assert.Equal(t, []string{"a", "c", "d", "b"}, idsOf(got))
	})

	t.Run("rating descending", func(t *testing.T) {
		got := FilterSort(ps, Query{Sort: SortRating})
		assert.Equal(t, []string{"c", "a", "d", "b"}, idsOf(got))
	})

	t.Run("newest partitions flagged products first", func(t *testing.T) {
		got := FilterSort(ps, Query{Sort: SortNewest})
		require.NotEmpty(t, got)
		assert.Equal(t, []string{"c", "a", "b", "d"}, idsOf(got))
	})

	t.Run("popularity keeps catalog order", func(t *testing.T) {
		got := FilterSort(ps, Query{Sort: SortPopularity})
		assert.Equal(t, []string{"a", "b", "c", "d"}, idsOf(got))
	})
}
