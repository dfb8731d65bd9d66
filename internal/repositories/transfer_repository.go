package repositories

import (
	"context"

	"inventory/internal/models"
	"inventory/internal/query"
)

// TransferFilter narrows a transfer listing by product name.
type TransferFilter struct {
	Product string
}

// TransferSortColumns maps the sortable API fields of transfers to columns.
var TransferSortColumns = query.Columns{
	"quantity":    "quantity",
	"source":      "source",
	"destination": "destination",
	"createdat":   "created_at",
	"updatedat":   "updated_at",
}

// TransferRepository defines the interface for transfer data access.
type TransferRepository interface {
	List(ctx context.Context, filter TransferFilter, params query.Params) ([]models.Transfer, int64, error)
	GetByID(ctx context.Context, id string) (*models.Transfer, error)
	Create(ctx context.Context, transfer *models.Transfer) error
	Delete(ctx context.Context, ids []string) (int64, error)
}
