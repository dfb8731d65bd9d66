// Package testutil provides database fixtures for package tests.
package testutil

import (
	"fmt"
	"strconv"
	"testing"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/pkg/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB opens a migrated in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.New().String())
	db, err := database.Open(database.Config{
		Driver:       database.DriverSQLite,
		DSN:          dsn,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// Seed holds rows created by SeedProduct.
type Seed struct {
	Category *models.Category
	Supplier *models.Supplier
	Product  *models.Product
}

// SeedProduct stores a category, a supplier and a product with the given
// stock levels. Names are suffixed to stay unique within one database.
func SeedProduct(t *testing.T, store *repositories.Store, name string, storeQty, counterQty int) Seed {
	t.Helper()
	ctx := t.Context()
	suffix := uuid.New().String()[:8]

	category := &models.Category{Name: "Category " + suffix}
	require.NoError(t, store.Categories.Create(ctx, category))

	supplier := &models.Supplier{Name: "Supplier " + suffix, Phone: phoneFor(suffix)}
	require.NoError(t, store.Suppliers.Create(ctx, supplier))

	product := &models.Product{
		Name:       name,
		UnitCost:   decimal.RequireFromString("10.00"),
		UnitPrice:  decimal.RequireFromString("15.00"),
		Store:      storeQty,
		Counter:    counterQty,
		CategoryID: category.ID,
	}
	require.NoError(t, store.Products.Create(ctx, product))

	return Seed{Category: category, Supplier: supplier, Product: product}
}

// phoneFor derives a ten digit phone number from a hex suffix.
func phoneFor(suffix string) string {
	n, _ := strconv.ParseUint(suffix, 16, 64)
	return fmt.Sprintf("%010d", n%10000000000)
}
