package models

import "time"

// Sale records items sold from the counter.
type Sale struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	ProductID string    `json:"productId" gorm:"type:varchar(36);not null;index"`
	Product   *Product  `json:"product,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}
