package repositories

import (
	"context"

	"inventory/internal/models"
	"inventory/internal/query"
)

// SupplierFilter narrows a supplier listing.
type SupplierFilter struct {
	Name string
}

// SupplierSortColumns maps the sortable API fields of suppliers to columns.
var SupplierSortColumns = query.Columns{
	"name":      "name",
	"phone":     "phone",
	"email":     "email",
	"createdat": "created_at",
	"updatedat": "updated_at",
}

// SupplierRepository defines the interface for supplier data access.
type SupplierRepository interface {
	List(ctx context.Context, filter SupplierFilter, params query.Params) ([]models.Supplier, int64, error)
	GetByID(ctx context.Context, id string) (*models.Supplier, error)
	FindByName(ctx context.Context, name string) (*models.Supplier, error)
	FindByPhone(ctx context.Context, phone string) (*models.Supplier, error)
	FindByEmail(ctx context.Context, email string) (*models.Supplier, error)
	Create(ctx context.Context, supplier *models.Supplier) error
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, ids []string) (int64, error)
}
