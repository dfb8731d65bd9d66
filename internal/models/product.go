package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a stocked item. Store and Counter are only changed by the
// stock ledger after creation.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string          `json:"name" gorm:"uniqueIndex;type:varchar(50);not null"`
	UnitCost    decimal.Decimal `json:"unitCost" gorm:"type:decimal(10,2);not null"`
	UnitPrice   decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2);not null"`
	Store       int             `json:"store" gorm:"not null;default:0;check:store >= 0"`
	Counter     int             `json:"counter" gorm:"not null;default:0;check:counter >= 0"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	CategoryID  string          `json:"categoryId" gorm:"type:varchar(36);not null;index"`
	Category    *Category       `json:"category,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Quantity returns the stock held at loc.
func (p *Product) Quantity(loc Location) int {
	if loc == LocationCounter {
		return p.Counter
	}
	return p.Store
}
