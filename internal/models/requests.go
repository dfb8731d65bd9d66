package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CategoryInput is the body of category create and update requests.
type CategoryInput struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"omitempty,min=5,max=255"`
}

func (in *CategoryInput) Normalize() {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

// ProductInput is the body of product create and update requests. Store and
// Counter are only honoured on create.
type ProductInput struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"categoryId" validate:"required"`
	Name        string          `json:"name" validate:"required,min=2,max=50"`
	UnitCost    decimal.Decimal `json:"unitCost" validate:"required,gte=1"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"required,gte=1"`
	Store       int             `json:"store" validate:"gte=0"`
	Counter     int             `json:"counter" validate:"gte=0"`
	Description string          `json:"description" validate:"omitempty,min=5,max=255"`
}

func (in *ProductInput) Normalize() {
	in.ID = strings.TrimSpace(in.ID)
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

// SupplierInput is the body of supplier create and update requests.
type SupplierInput struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required,min=2,max=50"`
	Phone string `json:"phone" validate:"required,len=10,numeric"`
	Email string `json:"email" validate:"omitempty,min=5,max=40,email"`
}

func (in *SupplierInput) Normalize() {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

// PurchaseInput is the body of purchase create and update requests.
type PurchaseInput struct {
	ID         string          `json:"id"`
	SupplierID string          `json:"supplierId" validate:"required"`
	ProductID  string          `json:"productId" validate:"required"`
	Quantity   int             `json:"quantity" validate:"required,gt=0"`
	UnitCost   decimal.Decimal `json:"unitCost" validate:"required,gte=1"`
	UnitPrice  decimal.Decimal `json:"unitPrice" validate:"required,gte=1"`
	Location   Location        `json:"location" validate:"required,oneof=store counter"`
}

func (in *PurchaseInput) Normalize() {
	in.ID = strings.TrimSpace(in.ID)
	in.SupplierID = strings.TrimSpace(in.SupplierID)
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.Location = Location(strings.ToLower(strings.TrimSpace(string(in.Location))))
}

// SaleInput is the body of a sale create request.
type SaleInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

func (in *SaleInput) Normalize() {
	in.ProductID = strings.TrimSpace(in.ProductID)
}

// SaleUpdateInput is the body of a sale update request.
type SaleUpdateInput struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

func (in *SaleUpdateInput) Normalize() {
	in.ID = strings.TrimSpace(in.ID)
}

// TransferInput is the body of a transfer create request.
type TransferInput struct {
	ProductID   string   `json:"productId" validate:"required"`
	Quantity    int      `json:"quantity" validate:"required,gt=0"`
	Source      Location `json:"source" validate:"required,oneof=store counter"`
	Destination Location `json:"destination" validate:"required,oneof=store counter"`
}

func (in *TransferInput) Normalize() {
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.Source = Location(strings.ToLower(strings.TrimSpace(string(in.Source))))
	in.Destination = Location(strings.ToLower(strings.TrimSpace(string(in.Destination))))
}
