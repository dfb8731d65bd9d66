package models

import "time"

// Transfer records stock moved between the store and the counter.
type Transfer struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Quantity    int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	Source      Location  `json:"source" gorm:"type:varchar(7);not null"`
	Destination Location  `json:"destination" gorm:"type:varchar(7);not null"`
	ProductID   string    `json:"productId" gorm:"type:varchar(36);not null;index"`
	Product     *Product  `json:"product,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
