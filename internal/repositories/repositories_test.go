package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory/internal/models"
	"inventory/internal/query"
	"inventory/internal/repositories"
	"inventory/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *repositories.Store {
	t.Helper()
	return repositories.NewStore(testutil.NewDB(t))
}

func allRows() query.Params {
	return query.Params{Sort: query.DefaultSort}
}

func TestProductRepositoryCRUD(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	seed := testutil.SeedProduct(t, store, "Laptop", 10, 5)

	got, err := store.Products.GetByID(ctx, seed.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name)
	assert.True(t, decimal.RequireFromString("10").Equal(got.UnitCost))
	require.NotNil(t, got.Category)
	assert.Equal(t, seed.Category.ID, got.Category.ID)

	byName, err := store.Products.FindByName(ctx, "  LAPTOP ")
	require.NoError(t, err)
	assert.Equal(t, seed.Product.ID, byName.ID)

	got.Name = "Gaming Laptop"
	got.Store = 99
	got.Counter = 99
	require.NoError(t, store.Products.Update(ctx, got))

	reloaded, err := store.Products.GetByID(ctx, seed.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gaming Laptop", reloaded.Name)
	assert.Equal(t, 10, reloaded.Store, "update must not change stock")
	assert.Equal(t, 5, reloaded.Counter)

	_, err = store.Products.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	err = store.Products.Update(ctx, &models.Product{ID: "missing"})
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}

func TestProductRepositoryUpdateStock(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	seed := testutil.SeedProduct(t, store, "Mouse", 10, 5)

	locked, err := store.Products.GetByIDForUpdate(ctx, seed.Product.ID)
	require.NoError(t, err)
	locked.Store = 0
	locked.Counter = 42
	locked.UnitCost = decimal.RequireFromString("12.50")
	require.NoError(t, store.Products.UpdateStock(ctx, locked))

	got, err := store.Products.GetByID(ctx, seed.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Store)
	assert.Equal(t, 42, got.Counter)
	assert.True(t, decimal.RequireFromString("12.50").Equal(got.UnitCost))
}

func TestStoreTransactionRollsBack(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	seed := testutil.SeedProduct(t, store, "Keyboard", 10, 5)

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(tx *repositories.Store) error {
		p, err := tx.Products.GetByIDForUpdate(ctx, seed.Product.ID)
		if err != nil {
			return err
		}
		p.Store = 1
		if err := tx.Products.UpdateStock(ctx, p); err != nil {
			return err
		}
		if err := tx.Sales.Create(ctx, &models.Sale{ProductID: p.ID, Quantity: 1}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := store.Products.GetByID(ctx, seed.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Store)

	_, total, err := store.Sales.List(ctx, repositories.SaleFilter{}, allRows())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestStoreTransactionWithIsolation(t *testing.T) {
	store := repositories.NewStore(testutil.NewDB(t), repositories.WithIsolation(0))
	err := store.Transaction(context.Background(), func(tx *repositories.Store) error {
		return tx.Categories.Create(context.Background(), &models.Category{Name: "Tools"})
	})
	require.NoError(t, err)
}

func TestCategoryDeleteCascades(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	seed := testutil.SeedProduct(t, store, "Pen", 10, 5)
	other := testutil.SeedProduct(t, store, "Pencil", 3, 3)

	require.NoError(t, store.Purchases.Create(ctx, &models.Purchase{
		ProductID: seed.Product.ID, SupplierID: seed.Supplier.ID, Quantity: 2,
		UnitCost: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(2), Location: models.LocationStore,
	}))
	require.NoError(t, store.Sales.Create(ctx, &models.Sale{ProductID: seed.Product.ID, Quantity: 1}))
	require.NoError(t, store.Transfers.Create(ctx, &models.Transfer{
		ProductID: seed.Product.ID, Quantity: 1, Source: models.LocationStore, Destination: models.LocationCounter,
	}))
	require.NoError(t, store.Sales.Create(ctx, &models.Sale{ProductID: other.Product.ID, Quantity: 1}))

	deleted, err := store.Categories.Delete(ctx, []string{seed.Category.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, err = store.Products.GetByID(ctx, seed.Product.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, purchases, err := store.Purchases.List(ctx, repositories.PurchaseFilter{}, allRows())
	require.NoError(t, err)
	assert.Zero(t, purchases)
	_, transfers, err := store.Transfers.List(ctx, repositories.TransferFilter{}, allRows())
	require.NoError(t, err)
	assert.Zero(t, transfers)

	sales, total, err := store.Sales.List(ctx, repositories.SaleFilter{}, allRows())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, other.Product.ID, sales[0].ProductID)
}

func TestProductDeleteReportsPartialCount(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	seed := testutil.SeedProduct(t, store, "Stapler", 1, 1)

	deleted, err := store.Products.Delete(ctx, []string{seed.Product.ID, "missing"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, err = store.Products.GetByID(ctx, seed.Product.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSupplierDeleteCascadesToPurchases(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	seed := testutil.SeedProduct(t, store, "Glue", 1, 1)

	require.NoError(t, store.Purchases.Create(ctx, &models.Purchase{
		ProductID: seed.Product.ID, SupplierID: seed.Supplier.ID, Quantity: 2,
		UnitCost: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(2), Location: models.LocationCounter,
	}))

	deleted, err := store.Suppliers.Delete(ctx, []string{seed.Supplier.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, total, err := store.Purchases.List(ctx, repositories.PurchaseFilter{}, allRows())
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = store.Products.GetByID(ctx, seed.Product.ID)
	assert.NoError(t, err, "products outlive their suppliers")
}

func TestProductListFiltersAndPaginates(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	for _, name := range []string{"Red Apple", "Green Apple", "Banana", "Apple Juice", "Cherry", "Apple Pie"} {
		testutil.SeedProduct(t, store, name, 1, 1)
	}

	page := &query.Page{Number: 2, Limit: 3}
	params := query.Params{
		Sort: []query.SortField{{Column: "name"}},
		Page: page,
	}
	products, total, err := store.Products.List(ctx, repositories.ProductFilter{Name: "apple"}, params)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total, "count ignores pagination")
	require.Len(t, products, 1)
	assert.Equal(t, "Red Apple", products[0].Name)
	assert.NotNil(t, products[0].Category)
}

func TestProductListByCategoryName(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	seed := testutil.SeedProduct(t, store, "Hammer", 1, 1)
	testutil.SeedProduct(t, store, "Wrench", 1, 1)

	products, total, err := store.Products.List(ctx, repositories.ProductFilter{Category: seed.Category.Name[9:]}, allRows())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Hammer", products[0].Name)

	products, _, err = store.Products.List(ctx, repositories.ProductFilter{CategoryID: seed.Category.ID}, allRows())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, seed.Product.ID, products[0].ID)
}

func TestPurchaseListFiltersByRelatedNames(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	a := testutil.SeedProduct(t, store, "Printer", 1, 1)
	b := testutil.SeedProduct(t, store, "Scanner", 1, 1)

	for _, s := range []testutil.Seed{a, b} {
		require.NoError(t, store.Purchases.Create(ctx, &models.Purchase{
			ProductID: s.Product.ID, SupplierID: s.Supplier.ID, Quantity: 1,
			UnitCost: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1), Location: models.LocationStore,
		}))
	}

	purchases, total, err := store.Purchases.List(ctx, repositories.PurchaseFilter{Product: "print"}, allRows())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.NotNil(t, purchases[0].Product)
	require.NotNil(t, purchases[0].Supplier)
	assert.Equal(t, "Printer", purchases[0].Product.Name)

	purchases, total, err = store.Purchases.List(ctx, repositories.PurchaseFilter{Supplier: b.Supplier.Name}, allRows())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, b.Product.ID, purchases[0].ProductID)
}

func TestListDateRange(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	testutil.SeedProduct(t, store, "Lamp", 1, 1)

	future := time.Now().Add(time.Hour)
	_, total, err := store.Products.List(ctx, repositories.ProductFilter{}, query.Params{From: &future})
	require.NoError(t, err)
	assert.Zero(t, total)

	past := time.Now().Add(-time.Hour)
	_, total, err = store.Products.List(ctx, repositories.ProductFilter{}, query.Params{From: &past, To: &future})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	east := time.FixedZone("UTC+3", 3*60*60)
	west := time.FixedZone("UTC-5", -5*60*60)
	from := time.Now().Add(-time.Hour).In(east)
	_, total, err = store.Products.List(ctx, repositories.ProductFilter{}, query.Params{From: &from})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	to := time.Now().Add(time.Hour).In(west)
	_, total, err = store.Products.List(ctx, repositories.ProductFilter{}, query.Params{To: &to})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	ahead := time.Now().Add(time.Hour).In(east)
	_, total, err = store.Products.List(ctx, repositories.ProductFilter{}, query.Params{From: &ahead})
	require.NoError(t, err)
	assert.Zero(t, total)

	behind := time.Now().Add(-time.Hour).In(west)
	_, total, err = store.Products.List(ctx, repositories.ProductFilter{}, query.Params{To: &behind})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestSupplierLookups(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	email := "sales@acme.test"
	supplier := &models.Supplier{Name: "Acme", Phone: "0712345678", Email: &email}
	require.NoError(t, store.Suppliers.Create(ctx, supplier))

	got, err := store.Suppliers.FindByName(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, supplier.ID, got.ID)

	got, err = store.Suppliers.FindByPhone(ctx, "0712345678")
	require.NoError(t, err)
	assert.Equal(t, supplier.ID, got.ID)

	got, err = store.Suppliers.FindByEmail(ctx, "SALES@acme.test")
	require.NoError(t, err)
	assert.Equal(t, supplier.ID, got.ID)

	supplier.Email = nil
	require.NoError(t, store.Suppliers.Update(ctx, supplier))
	_, err = store.Suppliers.FindByEmail(ctx, email)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSaleUpdateQuantity(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	seed := testutil.SeedProduct(t, store, "Chair", 1, 5)
	sale := &models.Sale{ProductID: seed.Product.ID, Quantity: 2}
	require.NoError(t, store.Sales.Create(ctx, sale))

	require.NoError(t, store.Sales.UpdateQuantity(ctx, sale.ID, 4))
	got, err := store.Sales.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Quantity)
	require.NotNil(t, got.Product)

	assert.ErrorIs(t, store.Sales.UpdateQuantity(ctx, "missing", 1), repositories.ErrNotFound)
}
