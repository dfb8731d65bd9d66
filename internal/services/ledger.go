package services

import (
	"context"
	"errors"
	"time"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/pkg/logger"
	"inventory/pkg/metrics"
)

// Stock mutation operations, used as metric labels.
const (
	opPurchaseCreate = "purchase.create"
	opPurchaseUpdate = "purchase.update"
	opSaleCreate     = "sale.create"
	opSaleUpdate     = "sale.update"
	opSaleCancel     = "sale.cancel"
	opTransferCreate = "transfer.create"
)

// Purchase update policies.
const (
	// PolicyLocation moves the previous quantity only when the location
	// changes and otherwise leaves stock alone.
	PolicyLocation = "location"
	// PolicyReconcile reverses the previous purchase and applies the new one.
	PolicyReconcile = "reconcile"
)

// EventPublisher publishes committed stock events.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// Option configures the stock ledger services.
type Option func(*ledger)

// WithPublisher publishes a stock event after every committed mutation.
func WithPublisher(p EventPublisher) Option {
	return func(l *ledger) { l.publisher = p }
}

// WithMetrics counts stock mutations on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(l *ledger) { l.metrics = m }
}

// WithPurchaseUpdatePolicy selects how a purchase update changes stock.
func WithPurchaseUpdatePolicy(policy string) Option {
	return func(l *ledger) { l.policy = policy }
}

// ledger holds what the purchase, sale and transfer services share.
type ledger struct {
	store     *repositories.Store
	publisher EventPublisher
	metrics   *metrics.Metrics
	policy    string
	now       func() time.Time
}

func newLedger(store *repositories.Store, opts []Option) ledger {
	l := ledger{store: store, policy: PolicyLocation, now: time.Now}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// fail records a failed mutation. Business errors pass through; anything
// else is logged and replaced by generic.
func (l *ledger) fail(ctx context.Context, op, generic string, err error) error {
	var be *BusinessError
	if errors.As(err, &be) {
		l.metrics.StockMutation(op, metrics.OutcomeRejected)
		return be
	}
	l.metrics.StockMutation(op, metrics.OutcomeFailed)
	logger.Error(ctx).Err(err).Str("operation", op).Msg("stock mutation failed")
	return &BusinessError{Message: generic, Err: err}
}

// commit records a successful mutation and publishes its event. Publishing
// errors are logged only.
func (l *ledger) commit(ctx context.Context, op string, event models.StockEvent) {
	l.metrics.StockMutation(op, metrics.OutcomeSuccess)
	if l.publisher == nil {
		return
	}
	event.OccurredAt = l.now().UTC()
	if err := l.publisher.Publish(ctx, event.RoutingKey(), event); err != nil {
		logger.Warn(ctx).Err(err).Str("event", event.Type).Msg("failed to publish stock event")
	}
}

func stockEvent(kind, entityID string, quantity int, p *models.Product) models.StockEvent {
	return models.StockEvent{
		Type:      kind,
		EntityID:  entityID,
		ProductID: p.ID,
		Quantity:  quantity,
		Store:     p.Store,
		Counter:   p.Counter,
	}
}

// lockProduct loads a product row for update inside tx.
func lockProduct(ctx context.Context, tx *repositories.Store, id string) (*models.Product, error) {
	p, err := tx.Products.GetByIDForUpdate(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, notFound("Product")
	}
	return p, err
}
