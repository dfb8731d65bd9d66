package services

import (
	"context"

	"inventory/internal/models"
	"inventory/internal/query"
	"inventory/internal/repositories"
	"inventory/pkg/metrics"
)

// SaleService records items sold from the counter.
type SaleService struct {
	ledger
}

// NewSaleService creates a new SaleService.
func NewSaleService(store *repositories.Store, opts ...Option) *SaleService {
	return &SaleService{ledger: newLedger(store, opts)}
}

func (s *SaleService) List(ctx context.Context, filter repositories.SaleFilter, params query.Params) ([]models.Sale, int64, error) {
	return s.store.Sales.List(ctx, filter, params)
}

func (s *SaleService) Get(ctx context.Context, id string) (*models.Sale, error) {
	sale, err := s.store.Sales.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("Sale", err)
	}
	return sale, nil
}

// Create stores a sale and takes its quantity off the counter.
func (s *SaleService) Create(ctx context.Context, in *models.SaleInput) (*models.Sale, error) {
	product, err := s.store.Products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, lookupError("Product", err)
	}
	if product.Counter < in.Quantity {
		s.metrics.StockMutation(opSaleCreate, metrics.OutcomeRejected)
		return nil, insufficient(product, models.LocationCounter)
	}

	sale := &models.Sale{ProductID: in.ProductID, Quantity: in.Quantity}
	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		p, err := lockProduct(ctx, tx, in.ProductID)
		if err != nil {
			return err
		}
		if p.Counter < in.Quantity {
			return insufficient(p, models.LocationCounter)
		}
		if err := tx.Sales.Create(ctx, sale); err != nil {
			return err
		}
		adjust(p, models.LocationCounter, -in.Quantity)
		if err := tx.Products.UpdateStock(ctx, p); err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, opSaleCreate, "Sale not created. Please try again", err)
	}

	s.commit(ctx, opSaleCreate, stockEvent(models.EventSaleCreated, sale.ID, sale.Quantity, product))
	return sale, nil
}

// Cancel deletes a sale and returns its quantity to the counter.
func (s *SaleService) Cancel(ctx context.Context, id string) error {
	sale, err := s.store.Sales.GetByID(ctx, id)
	if err != nil {
		return lookupError("Sale", err)
	}
	if _, err := s.store.Products.GetByID(ctx, sale.ProductID); err != nil {
		return lookupError("Product", err)
	}

	var product *models.Product
	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		current, err := tx.Sales.GetByID(ctx, id)
		if err != nil {
			return lookupError("Sale", err)
		}
		p, err := lockProduct(ctx, tx, current.ProductID)
		if err != nil {
			return err
		}
		adjust(p, models.LocationCounter, current.Quantity)
		if err := tx.Products.UpdateStock(ctx, p); err != nil {
			return err
		}
		deleted, err := tx.Sales.Delete(ctx, []string{id})
		if err != nil {
			return err
		}
		if deleted != 1 {
			return notFound("Sale")
		}
		sale = current
		product = p
		return nil
	})
	if err != nil {
		return s.fail(ctx, opSaleCancel, "Sale not cancelled. Please try again", err)
	}

	s.commit(ctx, opSaleCancel, stockEvent(models.EventSaleCancelled, sale.ID, sale.Quantity, product))
	return nil
}

// Update changes the quantity of a sale and moves the difference between
// the counter and the sale. It returns nil and no error when the quantity
// is unchanged.
func (s *SaleService) Update(ctx context.Context, in *models.SaleUpdateInput) (*models.Sale, error) {
	sale, err := s.store.Sales.GetByID(ctx, in.ID)
	if err != nil {
		return nil, lookupError("Sale", err)
	}
	if _, err := s.store.Products.GetByID(ctx, sale.ProductID); err != nil {
		return nil, lookupError("Product", err)
	}
	if sale.Quantity == in.Quantity {
		return nil, nil
	}

	var product *models.Product
	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		current, err := tx.Sales.GetByID(ctx, in.ID)
		if err != nil {
			return lookupError("Sale", err)
		}
		p, err := lockProduct(ctx, tx, current.ProductID)
		if err != nil {
			return err
		}
		available := p.Counter + current.Quantity
		if available < in.Quantity {
			return businessError("Only %d items are left in counter", available)
		}
		adjust(p, models.LocationCounter, current.Quantity-in.Quantity)
		if err := tx.Products.UpdateStock(ctx, p); err != nil {
			return err
		}
		if err := tx.Sales.UpdateQuantity(ctx, in.ID, in.Quantity); err != nil {
			return err
		}
		sale, err = tx.Sales.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, opSaleUpdate, "Sale not updated. Please try again", err)
	}

	s.commit(ctx, opSaleUpdate, stockEvent(models.EventSaleUpdated, sale.ID, sale.Quantity, product))
	return sale, nil
}

// Delete removes sales. Product stock is not reversed.
func (s *SaleService) Delete(ctx context.Context, ids []string) error {
	deleted, err := s.store.Sales.Delete(ctx, ids)
	if err != nil {
		return err
	}
	return deleteError("sales", len(ids), deleted)
}
