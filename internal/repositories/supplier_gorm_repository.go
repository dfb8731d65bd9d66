package repositories

import (
	"context"
	"fmt"
	"strings"

	"inventory/internal/models"
	"inventory/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSupplierRepository is a GORM implementation of SupplierRepository.
type GORMSupplierRepository struct {
	db *gorm.DB
}

// NewGORMSupplierRepository creates a new instance of GORMSupplierRepository.
func NewGORMSupplierRepository(db *gorm.DB) *GORMSupplierRepository {
	return &GORMSupplierRepository{db: db}
}

func (r *GORMSupplierRepository) List(ctx context.Context, filter SupplierFilter, params query.Params) ([]models.Supplier, int64, error) {
	var scopes []scope
	if filter.Name != "" {
		scopes = append(scopes, nameContains("name", filter.Name))
	}
	suppliers, total, err := listRows[models.Supplier](ctx, r.db, params, scopes)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, total, nil
}

func (r *GORMSupplierRepository) GetByID(ctx context.Context, id string) (*models.Supplier, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByName looks a supplier up by name, ignoring case.
func (r *GORMSupplierRepository) FindByName(ctx context.Context, name string) (*models.Supplier, error) {
	return r.findOne(ctx, "LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))
}

func (r *GORMSupplierRepository) FindByPhone(ctx context.Context, phone string) (*models.Supplier, error) {
	return r.findOne(ctx, "phone = ?", strings.TrimSpace(phone))
}

func (r *GORMSupplierRepository) FindByEmail(ctx context.Context, email string) (*models.Supplier, error) {
	return r.findOne(ctx, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *GORMSupplierRepository) findOne(ctx context.Context, cond string, arg interface{}) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&supplier).Error; err != nil {
		return nil, translate(err)
	}
	return &supplier, nil
}

func (r *GORMSupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

func (r *GORMSupplierRepository) Update(ctx context.Context, supplier *models.Supplier) error {
	res := r.db.WithContext(ctx).Model(&models.Supplier{}).Where("id = ?", supplier.ID).Updates(map[string]interface{}{
		"name":  supplier.Name,
		"phone": supplier.Phone,
		"email": supplier.Email,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes suppliers and their purchases.
func (r *GORMSupplierRepository) Delete(ctx context.Context, ids []string) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("supplier_id IN ?", ids).Delete(&models.Purchase{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&models.Supplier{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete suppliers: %w", err)
	}
	return deleted, nil
}
