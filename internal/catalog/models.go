package catalog

type VariantType string

const (
	VariantColor   VariantType = "color"
	VariantSize    VariantType = "size"
	VariantStorage VariantType = "storage"
)

type Variant struct {
	ID      string      `json:"id"`
	Type    VariantType `json:"type"`
	Label   string      `json:"label"`
	Value   string      `json:"value"`
	InStock bool        `json:"in_stock"`
}

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"product_count,omitempty"`
}

type Seller struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Verified bool    `json:"verified"`
}

type Product struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"short_description"`
	Price            float64           `json:"price"`
	OriginalPrice    float64           `json:"original_price"`
	Discount         int               `json:"discount"` // percent off, author-supplied
	Currency         string            `json:"currency"`
	Category         Category          `json:"category"`
	Brand            string            `json:"brand"`
	Rating           float64           `json:"rating"`
	ReviewCount      int               `json:"review_count"`
	InStock          bool              `json:"in_stock"`
	Tags             []string          `json:"tags,omitempty"`
	Seller           Seller            `json:"seller"`
	Variants         []Variant         `json:"variants,omitempty"`
	Specifications   map[string]string `json:"specifications,omitempty"`
	IsFeatured       bool              `json:"is_featured,omitempty"`
	IsNew            bool              `json:"is_new,omitempty"`
	IsBestseller     bool              `json:"is_bestseller,omitempty"`
}
