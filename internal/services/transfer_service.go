package services

import (
	"context"

	"inventory/internal/models"
	"inventory/internal/query"
	"inventory/internal/repositories"
	"inventory/pkg/metrics"
)

// TransferService moves stock between the store and the counter.
type TransferService struct {
	ledger
}

// NewTransferService creates a new TransferService.
func NewTransferService(store *repositories.Store, opts ...Option) *TransferService {
	return &TransferService{ledger: newLedger(store, opts)}
}

func (s *TransferService) List(ctx context.Context, filter repositories.TransferFilter, params query.Params) ([]models.Transfer, int64, error) {
	return s.store.Transfers.List(ctx, filter, params)
}

func (s *TransferService) Get(ctx context.Context, id string) (*models.Transfer, error) {
	transfer, err := s.store.Transfers.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("Transfer", err)
	}
	return transfer, nil
}

// Create moves quantity items of a product from source to destination and
// records the transfer. A transfer within one location is recorded without
// changing stock.
func (s *TransferService) Create(ctx context.Context, in *models.TransferInput) (*models.Transfer, error) {
	if !in.Source.Valid() {
		return nil, businessError("Source must be either 'store' or 'counter'")
	}
	if !in.Destination.Valid() {
		return nil, businessError("Destination must be either 'store' or 'counter'")
	}

	product, err := s.store.Products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, lookupError("Product", err)
	}
	if product.Quantity(in.Source) < in.Quantity {
		s.metrics.StockMutation(opTransferCreate, metrics.OutcomeRejected)
		return nil, insufficient(product, in.Source)
	}

	transfer := &models.Transfer{
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Source:      in.Source,
		Destination: in.Destination,
	}
	err = s.store.Transaction(ctx, func(tx *repositories.Store) error {
		p, err := lockProduct(ctx, tx, in.ProductID)
		if err != nil {
			return err
		}
		if p.Quantity(in.Source) < in.Quantity {
			return insufficient(p, in.Source)
		}
		adjust(p, in.Source, -in.Quantity)
		adjust(p, in.Destination, in.Quantity)
		if err := tx.Products.UpdateStock(ctx, p); err != nil {
			return err
		}
		if err := tx.Transfers.Create(ctx, transfer); err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, opTransferCreate, "Transfer not created. Please try again", err)
	}

	event := stockEvent(models.EventTransferCreated, transfer.ID, transfer.Quantity, product)
	event.Source = transfer.Source
	event.Destination = transfer.Destination
	s.commit(ctx, opTransferCreate, event)
	return transfer, nil
}

// Delete removes transfers. Product stock is not reversed.
func (s *TransferService) Delete(ctx context.Context, ids []string) error {
	deleted, err := s.store.Transfers.Delete(ctx, ids)
	if err != nil {
		return err
	}
	return deleteError("transfers", len(ids), deleted)
}
