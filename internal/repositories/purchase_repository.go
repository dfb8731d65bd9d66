package repositories

import (
	"context"

	"inventory/internal/models"
	"inventory/internal/query"
)

// PurchaseFilter narrows a purchase listing by supplier and product name.
type PurchaseFilter struct {
	Supplier string
	Product  string
}

// PurchaseSortColumns maps the sortable API fields of purchases to columns.
var PurchaseSortColumns = query.Columns{
	"quantity":  "quantity",
	"unitcost":  "unit_cost",
	"unitprice": "unit_price",
	"location":  "location",
	"createdat": "created_at",
	"updatedat": "updated_at",
}

// PurchaseRepository defines the interface for purchase data access.
type PurchaseRepository interface {
	List(ctx context.Context, filter PurchaseFilter, params query.Params) ([]models.Purchase, int64, error)
	GetByID(ctx context.Context, id string) (*models.Purchase, error)
	Create(ctx context.Context, purchase *models.Purchase) error
	Update(ctx context.Context, purchase *models.Purchase) error
	Delete(ctx context.Context, ids []string) (int64, error)
}
