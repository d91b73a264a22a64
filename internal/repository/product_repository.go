package repository

import (
	"context"
	"errors"
	"sync"

	"productcatalog/internal/models"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product models.Product) (*models.Product, error)
	Update(ctx context.Context, id string, product models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// InMemoryProductRepository implements ProductRepository with an ordered
// in-memory collection. Insertion order is preserved across mutations and
// lookups by id are linear scans. An RWMutex guards the slice because the
// HTTP server handles requests in parallel.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new in-memory product repository with seed data
func NewInMemoryProductRepository() *InMemoryProductRepository {
	products := []models.Product{
		{ID: "1", Name: "Laptop", Description: "High-performance laptop with 16GB RAM", Price: 1200, Category: "electronics", InStock: true},
		{ID: "2", Name: "Smartphone", Description: "Latest model with 128GB storage", Price: 800, Category: "electronics", InStock: true},
		{ID: "3", Name: "Coffee Maker", Description: "Programmable coffee maker with timer", Price: 50, Category: "kitchen", InStock: false},
	}

	return &InMemoryProductRepository{
		products: products,
	}
}

// GetAll returns a snapshot of all products in collection order
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]models.Product, len(r.products))
	copy(snapshot, r.products)
	return snapshot, nil
}

// GetByID returns the product with the given id
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrProductNotFound
	}
	product := r.products[idx]
	return &product, nil
}

// Create assigns a fresh unique id to the product and appends it to the
// collection. Ids are never reused after deletion.
func (r *InMemoryProductRepository) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = uuid.New().String()
	r.products = append(r.products, product)
	return &product, nil
}

// Update replaces the product at the given id in place, preserving the id
// and the product's position in the collection
func (r *InMemoryProductRepository) Update(ctx context.Context, id string, product models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrProductNotFound
	}

	product.ID = id
	r.products[idx] = product
	return &product, nil
}

// Delete removes the product with the given id from the collection
func (r *InMemoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return ErrProductNotFound
	}

	r.products = append(r.products[:idx], r.products[idx+1:]...)
	return nil
}

// indexOf returns the position of the product with the given id, or -1.
// Callers must hold the lock.
func (r *InMemoryProductRepository) indexOf(id string) int {
	for i, product := range r.products {
		if product.ID == id {
			return i
		}
	}
	return -1
}
