package repositories

import (
	"context"

	"inventory/internal/models"
	"inventory/internal/query"
)

// CategoryFilter narrows a category listing.
type CategoryFilter struct {
	Name string
}

// CategorySortColumns maps the sortable API fields of categories to columns.
var CategorySortColumns = query.Columns{
	"name":      "name",
	"createdat": "created_at",
	"updatedat": "updated_at",
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	List(ctx context.Context, filter CategoryFilter, params query.Params) ([]models.Category, int64, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, ids []string) (int64, error)
}
