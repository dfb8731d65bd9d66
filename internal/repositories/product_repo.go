package repositories

import (
	"context"

	"inventory/internal/models"
	"inventory/internal/query"
)

// ProductFilter narrows a product listing. Category matches a substring of
// the category name.
type ProductFilter struct {
	Name       string
	Category   string
	CategoryID string
}

// ProductSortColumns maps the sortable API fields of products to columns.
var ProductSortColumns = query.Columns{
	"name":      "name",
	"unitcost":  "unit_cost",
	"unitprice": "unit_price",
	"store":     "store",
	"counter":   "counter",
	"createdat": "created_at",
	"updatedat": "updated_at",
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter, params query.Params) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	// GetByIDForUpdate loads a product and locks its row until the
	// surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	UpdateStock(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, ids []string) (int64, error)
}
