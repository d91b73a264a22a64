package service

import (
	"context"

	"productcatalog/internal/catalog"
	"productcatalog/internal/models"
	"productcatalog/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns one page of the catalog, optionally filtered by
// category. The filter is applied before pagination and Total reports the
// filtered count, not the page size.
func (s *ProductService) ListProducts(ctx context.Context, category string, page, limit int) (*models.ProductPage, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := catalog.FilterByCategory(products, category)

	return &models.ProductPage{
		Page:     page,
		Limit:    limit,
		Total:    len(filtered),
		Products: catalog.Paginate(filtered, page, limit),
	}, nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct stores a new product and returns it with its assigned id.
// Fields absent from the request are stored as zero values; the catalog
// performs no field validation.
func (s *ProductService) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	return s.repo.Create(ctx, product)
}

// UpdateProduct fully replaces the product at the given id. Fields omitted
// by the caller become zero values rather than being retained.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, product models.Product) (*models.Product, error) {
	return s.repo.Update(ctx, id, product)
}

// DeleteProduct removes the product with the given id
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SearchProducts returns all products whose name contains the given
// substring, case-insensitively.
func (s *ProductService) SearchProducts(ctx context.Context, name string) ([]models.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.SearchByName(products, name), nil
}

// GetStats computes aggregate statistics over the full catalog
func (s *ProductService) GetStats(ctx context.Context) (*models.Stats, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := catalog.ComputeStats(products)
	return &stats, nil
}
