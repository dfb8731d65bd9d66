package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records stock bought from a supplier into one location.
type Purchase struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Quantity   int             `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitCost   decimal.Decimal `json:"unitCost" gorm:"type:decimal(10,2);not null"`
	UnitPrice  decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2);not null"`
	Location   Location        `json:"location" gorm:"type:varchar(7);not null;default:store"`
	ProductID  string          `json:"productId" gorm:"type:varchar(36);not null;index"`
	Product    *Product        `json:"product,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	SupplierID string          `json:"supplierId" gorm:"type:varchar(36);not null;index"`
	Supplier   *Supplier       `json:"supplier,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt  time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
