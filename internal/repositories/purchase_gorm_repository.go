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

// GORMPurchaseRepository is a GORM implementation of PurchaseRepository.
type GORMPurchaseRepository struct {
	db *gorm.DB
}

// NewGORMPurchaseRepository creates a new instance of GORMPurchaseRepository.
func NewGORMPurchaseRepository(db *gorm.DB) *GORMPurchaseRepository {
	return &GORMPurchaseRepository{db: db}
}

// List returns one page of purchases with their product and supplier.
func (r *GORMPurchaseRepository) List(ctx context.Context, filter PurchaseFilter, params query.Params) ([]models.Purchase, int64, error) {
	var scopes []scope
	if filter.Supplier != "" {
		scopes = append(scopes, idsWhereNameContains("supplier_id", "suppliers", filter.Supplier))
	}
	if filter.Product != "" {
		scopes = append(scopes, idsWhereNameContains("product_id", "products", filter.Product))
	}
	purchases, total, err := listRows[models.Purchase](ctx, r.db, params, scopes, "Product", "Supplier")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, total, nil
}

func (r *GORMPurchaseRepository) GetByID(ctx context.Context, id string) (*models.Purchase, error) {
	var purchase models.Purchase
	err := r.db.WithContext(ctx).Preload("Product").Preload("Supplier").First(&purchase, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &purchase, nil
}

func (r *GORMPurchaseRepository) Create(ctx context.Context, purchase *models.Purchase) error {
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

func (r *GORMPurchaseRepository) Update(ctx context.Context, purchase *models.Purchase) error {
	res := r.db.WithContext(ctx).Model(&models.Purchase{}).Where("id = ?", purchase.ID).Updates(map[string]interface{}{
		"quantity":    purchase.Quantity,
		"unit_cost":   purchase.UnitCost,
		"unit_price":  purchase.UnitPrice,
		"location":    purchase.Location,
		"product_id":  purchase.ProductID,
		"supplier_id": purchase.SupplierID,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update purchase: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes purchases without touching product stock.
func (r *GORMPurchaseRepository) Delete(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Purchase{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete purchases: %w", res.Error)
	}
	return res.RowsAffected, nil
}
