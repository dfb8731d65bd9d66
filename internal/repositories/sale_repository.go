package repositories

import (
	"context"

	"inventory/internal/models"
	"inventory/internal/query"
)

// SaleFilter narrows a sale listing by product name.
type SaleFilter struct {
	Product string
}

// SaleSortColumns maps the sortable API fields of sales to columns.
var SaleSortColumns = query.Columns{
	"quantity":  "quantity",
	"createdat": "created_at",
	"updatedat": "updated_at",
}

// SaleRepository defines the interface for sale data access.
type SaleRepository interface {
	List(ctx context.Context, filter SaleFilter, params query.Params) ([]models.Sale, int64, error)
	GetByID(ctx context.Context, id string) (*models.Sale, error)
	Create(ctx context.Context, sale *models.Sale) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, ids []string) (int64, error)
}
