package catalog

import "sort"

// Catalog is the read-only product/category/seller store. It is built once
// at startup and never mutated afterwards, so lookups need no locking.
type Catalog struct {
	products   []Product
	categories []Category
	byID       map[string]*Product
	bySlug     map[string]*Product
	catBySlug  map[string]*Category
}

func New(products []Product, categories []Category) *Catalog {
	c := &Catalog{
		products:   products,
		categories: categories,
		byID:       make(map[string]*Product, len(products)),
		bySlug:     make(map[string]*Product, len(products)),
		catBySlug:  make(map[string]*Category, len(categories)),
	}
	for i := range c.products {
		p := &c.products[i]
		c.byID[p.ID] = p
		c.bySlug[p.Slug] = p
	}
	for i := range c.categories {
		cat := &c.categories[i]
		c.catBySlug[cat.Slug] = cat
	}
	return c
}

// Default returns a catalog loaded with the built-in seed data.
func Default() *Catalog {
	return New(seedProducts, seedCategories)
}

func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) ByID(id string) (Product, bool) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return *p, true
}

func (c *Catalog) BySlug(slug string) (Product, bool) {
	p, ok := c.bySlug[slug]
	if !ok {
		return Product{}, false
	}
	return *p, true
}

func (c *Catalog) CategoryBySlug(slug string) (Category, bool) {
	cat, ok := c.catBySlug[slug]
	if !ok {
		return Category{}, false
	}
	return *cat, true
}

// Brands returns the distinct brand names in order of first appearance.
func (c *Catalog) Brands() []string {
	seen := make(map[string]bool, len(c.products))
	var out []string
	for i := range c.products {
		b := c.products[i].Brand
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	return out
}

func (c *Catalog) Featured() []Product {
	var out []Product
	for i := range c.products {
		if c.products[i].IsFeatured {
			out = append(out, c.products[i])
		}
	}
	return out
}

func (c *Catalog) Bestsellers() []Product {
	var out []Product
	for i := range c.products {
		if c.products[i].IsBestseller {
			out = append(out, c.products[i])
		}
	}
	return out
}

// Deals returns discounted products, steepest discount first.
func (c *Catalog) Deals() []Product {
	var out []Product
	for i := range c.products {
		if c.products[i].Discount > 0 {
			out = append(out, c.products[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Discount > out[j].Discount })
	return out
}
