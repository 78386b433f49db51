package domain

// Category is the closed set of storefront categories. Values are display
// names; a product's category is always derived during catalog hydration,
// never set freely.
type Category string

const (
	CategoryExtinguishers Category = "Extintores"
	CategoryMaintenance   Category = "Mantención de Extintores"
	CategoryAccessories   Category = "Accesorios"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategoryExtinguishers, CategoryMaintenance, CategoryAccessories}
}

type ProductSpec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Product struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug,omitempty"`
	Name        string        `json:"name"`
	Category    Category      `json:"category"`
	Price       int           `json:"price"` // whole CLP
	Stock       *int          `json:"stock,omitempty"`
	Description string        `json:"description,omitempty"`
	ShortDesc   string        `json:"shortDesc,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Type        string        `json:"type,omitempty"` // ABC | CO2
	Capacity    string        `json:"capacity,omitempty"`
	Specs       []ProductSpec `json:"specs"`
}

// CartItem is one cart line: a product snapshot captured at add time plus a
// quantity that is never stored below 1.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
