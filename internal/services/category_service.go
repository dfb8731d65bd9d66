package services

import (
	"context"

	"inventory/internal/models"
	"inventory/internal/query"
	"inventory/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context, filter repositories.CategoryFilter, params query.Params) ([]models.Category, int64, error) {
	return s.repo.List(ctx, filter, params)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("Category", err)
	}
	return category, nil
}

// Create stores a validated category.
func (s *CategoryService) Create(ctx context.Context, in *models.CategoryInput) (*models.Category, error) {
	category := &models.Category{Name: in.Name, Description: in.Description}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update rewrites a validated category and returns the stored row.
func (s *CategoryService) Update(ctx context.Context, in *models.CategoryInput) (*models.Category, error) {
	err := s.repo.Update(ctx, &models.Category{ID: in.ID, Name: in.Name, Description: in.Description})
	if err != nil {
		return nil, updateError("Category", err)
	}
	return s.Get(ctx, in.ID)
}

// Delete removes categories with their products and ledger rows.
func (s *CategoryService) Delete(ctx context.Context, ids []string) error {
	deleted, err := s.repo.Delete(ctx, ids)
	if err != nil {
		return err
	}
	return deleteError("categories", len(ids), deleted)
}
