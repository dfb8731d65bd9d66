package models

import "time"

// Stock event types. The type doubles as the routing key suffix.
const (
	EventPurchaseCreated  = "purchase.created"
	EventPurchaseUpdated  = "purchase.updated"
	EventSaleCreated      = "sale.created"
	EventSaleUpdated      = "sale.updated"
	EventSaleCancelled    = "sale.cancelled"
	EventTransferCreated  = "transfer.created"
	stockEventRoutePrefix = "stock."
)

// StockEvent describes a committed stock mutation and the resulting stock
// levels of the product.
type StockEvent struct {
	Type        string    `json:"type"`
	EntityID    string    `json:"entityId"`
	ProductID   string    `json:"productId"`
	Quantity    int       `json:"quantity"`
	Location    Location  `json:"location,omitempty"`
	Source      Location  `json:"source,omitempty"`
	Destination Location  `json:"destination,omitempty"`
	Store       int       `json:"store"`
	Counter     int       `json:"counter"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// RoutingKey returns the topic the event is published under.
func (e StockEvent) RoutingKey() string {
	return stockEventRoutePrefix + e.Type
}
