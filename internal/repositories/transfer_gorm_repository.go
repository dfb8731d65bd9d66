package repositories

import (
	"context"
	"fmt"

	"inventory/internal/models"
	"inventory/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMTransferRepository is a GORM implementation of TransferRepository.
type GORMTransferRepository struct {
	db *gorm.DB
}

// NewGORMTransferRepository creates a new instance of GORMTransferRepository.
func NewGORMTransferRepository(db *gorm.DB) *GORMTransferRepository {
	return &GORMTransferRepository{db: db}
}

func (r *GORMTransferRepository) List(ctx context.Context, filter TransferFilter, params query.Params) ([]models.Transfer, int64, error) {
	var scopes []scope
	if filter.Product != "" {
		scopes = append(scopes, idsWhereNameContains("product_id", "products", filter.Product))
	}
	transfers, total, err := listRows[models.Transfer](ctx, r.db, params, scopes, "Product")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, total, nil
}

func (r *GORMTransferRepository) GetByID(ctx context.Context, id string) (*models.Transfer, error) {
	var transfer models.Transfer
	if err := r.db.WithContext(ctx).Preload("Product").First(&transfer, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &transfer, nil
}

func (r *GORMTransferRepository) Create(ctx context.Context, transfer *models.Transfer) error {
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(transfer).Error; err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}
	return nil
}

// Delete removes transfers without touching product stock.
func (r *GORMTransferRepository) Delete(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Transfer{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete transfers: %w", res.Error)
	}
	return res.RowsAffected, nil
}
