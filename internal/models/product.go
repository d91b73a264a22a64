package models

// Product represents a single catalog record.
// Field names match the JSON wire format consumed by API clients.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// ProductPage is the paginated listing response for GET /api/products.
// Total counts the filtered result before pagination is applied.
type ProductPage struct {
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

// Stats holds aggregate counts computed over the full catalog.
// Categories lists distinct values in first-occurrence order.
type Stats struct {
	TotalProducts int      `json:"totalProducts"`
	Categories    []string `json:"categories"`
	InStockCount  int      `json:"inStockCount"`
}
