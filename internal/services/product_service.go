package services

import (
	"context"

	"inventory/internal/models"
	"inventory/internal/query"
	"inventory/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// List returns one page of products and the number of matching products.
func (s *ProductService) List(ctx context.Context, filter repositories.ProductFilter, params query.Params) ([]models.Product, int64, error) {
	return s.repo.List(ctx, filter, params)
}

// Get retrieves a single product by its ID.
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("Product", err)
	}
	return product, nil
}

// Create stores a validated product with its opening stock.
func (s *ProductService) Create(ctx context.Context, in *models.ProductInput) (*models.Product, error) {
	product := &models.Product{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		UnitCost:    in.UnitCost,
		UnitPrice:   in.UnitPrice,
		Store:       in.Store,
		Counter:     in.Counter,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update rewrites the details of a product. Stock levels in the input are
// ignored; only the stock ledger changes them.
func (s *ProductService) Update(ctx context.Context, in *models.ProductInput) (*models.Product, error) {
	err := s.repo.Update(ctx, &models.Product{
		ID:          in.ID,
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		UnitCost:    in.UnitCost,
		UnitPrice:   in.UnitPrice,
		Description: in.Description,
	})
	if err != nil {
		return nil, updateError("Product", err)
	}
	return s.Get(ctx, in.ID)
}

// Delete removes products together with their ledger rows.
func (s *ProductService) Delete(ctx context.Context, ids []string) error {
	deleted, err := s.repo.Delete(ctx, ids)
	if err != nil {
		return err
	}
	return deleteError("products", len(ids), deleted)
}
