package catalog

import "math"

// Product represents a product in the catalog
type Product struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Price       float64        `json:"price"`
	OldPrice    float64        `json:"old_price,omitempty"`
	Description string         `json:"description"`
	Images      []string       `json:"images"`
	Category    string         `json:"category"`
	Subcategory string         `json:"subcategory,omitempty"`
	Brand       string         `json:"brand"`
	InStock     bool           `json:"in_stock"`
	Rating      float64        `json:"rating"`
	ReviewCount int            `json:"review_count"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	IsNew       bool           `json:"is_new,omitempty"`
	IsPopular   bool           `json:"is_popular,omitempty"`
	Discount    int            `json:"discount,omitempty"`
}

// DiscountPercent returns the discount badge value for the product.
// When an old price is present the percentage is derived from it; the
// explicit Discount field is only a fallback for products without one.
func (p Product) DiscountPercent() int {
	if p.OldPrice > 0 && p.OldPrice > p.Price {
		return int(math.Round((p.OldPrice - p.Price) / p.OldPrice * 100))
	}
	return p.Discount
}

// Category represents a top-level product category
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory is a named subdivision of a Category
type Subcategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SortKey selects the ordering applied by Sort
type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortNew       SortKey = "new"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
)

// PriceRange is an inclusive [Min, Max] price filter
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ProductListResponse wraps a list of products returned by the browse endpoints
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}
