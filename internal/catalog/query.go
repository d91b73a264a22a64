// Package catalog provides pure query functions over a snapshot of the
// product collection. None of the functions mutate their input; all of
// them preserve collection order.
package catalog

import (
	"math"
	"strings"

	"productcatalog/internal/models"
)

// FilterByCategory returns the products whose category equals the given
// value, compared case-insensitively. An empty category returns the input
// unchanged.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == "" {
		return products
	}

	matched := make([]models.Product, 0)
	for _, product := range products {
		if strings.EqualFold(product.Category, category) {
			matched = append(matched, product)
		}
	}
	return matched
}

// SearchByName returns the products whose name contains the given substring,
// compared case-insensitively.
func SearchByName(products []models.Product, name string) []models.Product {
	needle := strings.ToLower(name)

	matched := make([]models.Product, 0)
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Name), needle) {
			matched = append(matched, product)
		}
	}
	return matched
}

// Paginate returns the sub-sequence for the given 1-based page of the given
// size, clipped to the collection bounds. A page past the end yields an
// empty slice, never an error.
func Paginate(products []models.Product, page, limit int) []models.Product {
	if page < 1 || limit < 1 {
		return []models.Product{}
	}

	// (page-1)*limit can wrap for request-sized values; any page whose
	// offset exceeds the int range is far past the end of the collection.
	if page-1 > math.MaxInt/limit {
		return []models.Product{}
	}

	start := (page - 1) * limit
	if start >= len(products) {
		return []models.Product{}
	}

	end := len(products)
	if limit < end-start {
		end = start + limit
	}
	return products[start:end]
}

// ComputeStats aggregates the full collection: total count, distinct
// categories in first-occurrence order, and the number of in-stock products.
func ComputeStats(products []models.Product) models.Stats {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	inStockCount := 0

	for _, product := range products {
		if !seen[product.Category] {
			seen[product.Category] = true
			categories = append(categories, product.Category)
		}
		if product.InStock {
			inStockCount++
		}
	}

	return models.Stats{
		TotalProducts: len(products),
		Categories:    categories,
		InStockCount:  inStockCount,
	}
}
