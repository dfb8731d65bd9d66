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

// GORMSaleRepository is a GORM implementation of SaleRepository.
type GORMSaleRepository struct {
	db *gorm.DB
}

// NewGORMSaleRepository creates a new instance of GORMSaleRepository.
func NewGORMSaleRepository(db *gorm.DB) *GORMSaleRepository {
	return &GORMSaleRepository{db: db}
}

func (r *GORMSaleRepository) List(ctx context.Context, filter SaleFilter, params query.Params) ([]models.Sale, int64, error) {
	var scopes []scope
	if filter.Product != "" {
		scopes = append(scopes, idsWhereNameContains("product_id", "products", filter.Product))
	}
	sales, total, err := listRows[models.Sale](ctx, r.db, params, scopes, "Product")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, total, nil
}

func (r *GORMSaleRepository) GetByID(ctx context.Context, id string) (*models.Sale, error) {
	var sale models.Sale
	if err := r.db.WithContext(ctx).Preload("Product").First(&sale, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &sale, nil
}

func (r *GORMSaleRepository) Create(ctx context.Context, sale *models.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

func (r *GORMSaleRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	res := r.db.WithContext(ctx).Model(&models.Sale{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update sale: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes sales without touching product stock.
func (r *GORMSaleRepository) Delete(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Sale{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete sales: %w", res.Error)
	}
	return res.RowsAffected, nil
}
