package services

import (
	"context"

	"inventory/internal/models"
	"inventory/internal/query"
	"inventory/internal/repositories"
)

// SupplierService handles business logic related to suppliers.
type SupplierService struct {
	repo repositories.SupplierRepository
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(repo repositories.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

func (s *SupplierService) List(ctx context.Context, filter repositories.SupplierFilter, params query.Params) ([]models.Supplier, int64, error) {
	return s.repo.List(ctx, filter, params)
}

func (s *SupplierService) Get(ctx context.Context, id string) (*models.Supplier, error) {
	supplier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("Supplier", err)
	}
	return supplier, nil
}

// Create stores a validated supplier. An empty email is stored as NULL.
func (s *SupplierService) Create(ctx context.Context, in *models.SupplierInput) (*models.Supplier, error) {
	supplier := supplierFrom(in)
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) Update(ctx context.Context, in *models.SupplierInput) (*models.Supplier, error) {
	if err := s.repo.Update(ctx, supplierFrom(in)); err != nil {
		return nil, updateError("Supplier", err)
	}
	return s.Get(ctx, in.ID)
}

// Delete removes suppliers and their purchases.
func (s *SupplierService) Delete(ctx context.Context, ids []string) error {
	deleted, err := s.repo.Delete(ctx, ids)
	if err != nil {
		return err
	}
	return deleteError("suppliers", len(ids), deleted)
}

func supplierFrom(in *models.SupplierInput) *models.Supplier {
	supplier := &models.Supplier{ID: in.ID, Name: in.Name, Phone: in.Phone}
	if in.Email != "" {
		email := in.Email
		supplier.Email = &email
	}
	return supplier
}
