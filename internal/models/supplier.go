package models

import "time"

// Supplier sells stock to the shop through purchases.
type Supplier struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(50);not null"`
	Phone     string    `json:"phone" gorm:"uniqueIndex;type:varchar(10);not null"`
	Email     *string   `json:"email" gorm:"uniqueIndex;type:varchar(40)"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}
