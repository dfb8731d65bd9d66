package services

import (
	"context"
	"fmt"

	"inventory/internal/models"
	"inventory/internal/query"
	"inventory/internal/repositories"
)

// PurchaseService records stock bought from suppliers.
type PurchaseService struct {
	ledger
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(store *repositories.Store, opts ...Option) *PurchaseService {
	return &PurchaseService{ledger: newLedger(store, opts)}
}

// List returns one page of purchases and the number of matching purchases.
func (s *PurchaseService) List(ctx context.Context, filter repositories.PurchaseFilter, params query.Params) ([]models.Purchase, int64, error) {
	return s.store.Purchases.List(ctx, filter, params)
}

// Get returns a purchase with its product and supplier.
func (s *PurchaseService) Get(ctx context.Context, id string) (*models.Purchase, error) {
	purchase, err := s.store.Purchases.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("Purchase", err)
	}
	return purchase, nil
}

// Create stores a purchase, adds its quantity to the chosen location of the
// product and makes its prices the product's current prices.
func (s *PurchaseService) Create(ctx context.Context, in *models.PurchaseInput) (*models.Purchase, error) {
	if _, err := s.store.Suppliers.GetByID(ctx, in.SupplierID); err != nil {
		return nil, lookupError("Supplier", err)
	}
	if _, err := s.store.Products.GetByID(ctx, in.ProductID); err != nil {
		return nil, lookupError("Product", err)
	}

	purchase := &models.Purchase{
		SupplierID: in.SupplierID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		UnitCost:   in.UnitCost,
		UnitPrice:  in.UnitPrice,
		Location:   in.Location,
	}
	var product *models.Product
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		if err := tx.Purchases.Create(ctx, purchase); err != nil {
			return err
		}
		p, err := lockProduct(ctx, tx, in.ProductID)
		if err != nil {
			return err
		}
		adjust(p, in.Location, in.Quantity)
		if loc, ok := negativeAt(p); ok {
			return businessError("Purchase creation will result in a negative value for items in %s", loc)
		}
		p.UnitCost = in.UnitCost
		p.UnitPrice = in.UnitPrice
		if err := tx.Products.UpdateStock(ctx, p); err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, opPurchaseCreate, "Purchase not created. Please try again", err)
	}

	event := stockEvent(models.EventPurchaseCreated, purchase.ID, purchase.Quantity, product)
	event.Location = purchase.Location
	s.commit(ctx, opPurchaseCreate, event)
	return purchase, nil
}

// Update rewrites a purchase and moves stock according to the update policy.
func (s *PurchaseService) Update(ctx context.Context, in *models.PurchaseInput) (*models.Purchase, error) {
	if _, err := s.store.Purchases.GetByID(ctx, in.ID); err != nil {
		return nil, lookupError("Purchase", err)
	}
	if _, err := s.store.Suppliers.GetByID(ctx, in.SupplierID); err != nil {
		return nil, lookupError("Supplier", err)
	}
	if _, err := s.store.Products.GetByID(ctx, in.ProductID); err != nil {
		return nil, lookupError("Product", err)
	}

	var (
		purchase *models.Purchase
		product  *models.Product
	)
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		prev, err := tx.Purchases.GetByID(ctx, in.ID)
		if err != nil {
			return lookupError("Purchase", err)
		}

		if s.policy == PolicyReconcile {
			product, err = reconcilePurchase(ctx, tx, prev, in)
		} else {
			product, err = movePurchase(ctx, tx, prev, in)
		}
		if err != nil {
			return err
		}

		err = tx.Purchases.Update(ctx, &models.Purchase{
			ID:         prev.ID,
			SupplierID: in.SupplierID,
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			UnitCost:   in.UnitCost,
			UnitPrice:  in.UnitPrice,
			Location:   in.Location,
		})
		if err != nil {
			return err
		}
		purchase, err = tx.Purchases.GetByID(ctx, prev.ID)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, opPurchaseUpdate, "Purchase not updated. Please try again", err)
	}

	event := stockEvent(models.EventPurchaseUpdated, purchase.ID, purchase.Quantity, product)
	event.Location = purchase.Location
	s.commit(ctx, opPurchaseUpdate, event)
	return purchase, nil
}

// movePurchase only touches stock when the location changes: the previous
// quantity leaves the previous location and the new quantity arrives at the
// new one. Prices of the product are left as they are.
func movePurchase(ctx context.Context, tx *repositories.Store, prev *models.Purchase, in *models.PurchaseInput) (*models.Product, error) {
	p, err := lockProduct(ctx, tx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if prev.Location == in.Location {
		return p, nil
	}

	adjust(p, prev.Location, -prev.Quantity)
	if loc, ok := negativeAt(p); ok {
		return nil, businessError("Purchase update will result in a negative value for items in %s", loc)
	}
	adjust(p, in.Location, in.Quantity)
	if err := tx.Products.UpdateStock(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// reconcilePurchase reverses the previous purchase on its product and
// applies the new one, possibly on another product. The new product takes
// the prices of the purchase.
func reconcilePurchase(ctx context.Context, tx *repositories.Store, prev *models.Purchase, in *models.PurchaseInput) (*models.Product, error) {
	old, err := lockProduct(ctx, tx, prev.ProductID)
	if err != nil {
		return nil, err
	}
	adjust(old, prev.Location, -prev.Quantity)

	// On the same product the reversed stock is never stored, so only the
	// final levels are checked.
	target := old
	if in.ProductID != prev.ProductID {
		if loc, ok := negativeAt(old); ok {
			return nil, businessError("Purchase update will result in a negative value for items in %s", loc)
		}
		if err := tx.Products.UpdateStock(ctx, old); err != nil {
			return nil, err
		}
		if target, err = lockProduct(ctx, tx, in.ProductID); err != nil {
			return nil, err
		}
	}

	adjust(target, in.Location, in.Quantity)
	if loc, ok := negativeAt(target); ok {
		return nil, businessError("Purchase update will result in a negative value for items in %s", loc)
	}
	target.UnitCost = in.UnitCost
	target.UnitPrice = in.UnitPrice
	if err := tx.Products.UpdateStock(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to apply purchase: %w", err)
	}
	return target, nil
}

// Delete removes purchases. Product stock is not reversed.
func (s *PurchaseService) Delete(ctx context.Context, ids []string) error {
	deleted, err := s.store.Purchases.Delete(ctx, ids)
	if err != nil {
		return err
	}
	return deleteError("purchases", len(ids), deleted)
}
