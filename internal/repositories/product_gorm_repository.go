package repositories

import (
	"context"
	"fmt"
	"strings"

	"inventory/internal/models"
	"inventory/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// List returns one page of products with their category and the number of
// products matching the filter.
func (r *GORMProductRepository) List(ctx context.Context, filter ProductFilter, params query.Params) ([]models.Product, int64, error) {
	var scopes []scope
	if filter.Name != "" {
		scopes = append(scopes, nameContains("name", filter.Name))
	}
	if filter.CategoryID != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("category_id = ?", filter.CategoryID)
		})
	}
	if filter.Category != "" {
		scopes = append(scopes, idsWhereNameContains("category_id", "categories", filter.Category))
	}

	products, total, err := listRows[models.Product](ctx, r.db, params, scopes, "Category")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// GetByID retrieves a single product with its category.
func (r *GORMProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// GetByIDForUpdate retrieves a product with SELECT ... FOR UPDATE.
func (r *GORMProductRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// FindByName looks a product up by name, ignoring case.
func (r *GORMProductRepository) FindByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&product).Error
	if err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update writes the descriptive fields and prices of a product. Stock
// levels are left alone.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":        product.Name,
		"unit_cost":   product.UnitCost,
		"unit_price":  product.UnitPrice,
		"description": product.Description,
		"category_id": product.CategoryID,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStock writes the stock levels and the current prices of a product.
func (r *GORMProductRepository) UpdateStock(ctx context.Context, product *models.Product) error {
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"store":      product.Store,
		"counter":    product.Counter,
		"unit_cost":  product.UnitCost,
		"unit_price": product.UnitPrice,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update product stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes products and their purchases, sales and transfers. It
// returns how many products were deleted.
func (r *GORMProductRepository) Delete(ctx context.Context, ids []string) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteLedger(tx, ids); err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&models.Product{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}
	return deleted, nil
}
