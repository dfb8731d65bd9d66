package validation

import (
	"context"
	"fmt"

	"inventory/internal/models"
)

// Category normalises in and validates it. update requires the id of an
// existing category. The error is only set when a lookup failed.
func (v *Validator) Category(ctx context.Context, in *models.CategoryInput, update bool) (Errors, error) {
	in.Normalize()
	errs := v.fields(in, categoryMessages)

	if update {
		if err := v.requireRow(errs, "id", in.ID, "Category", func(id string) error {
			_, err := v.store.Categories.GetByID(ctx, id)
			return err
		}); err != nil {
			return nil, err
		}
	}

	if !errs.has("name") {
		in.Name = v.TitleCase(in.Name)
		found, err := v.store.Categories.FindByName(ctx, in.Name)
		clash, err := conflicts(categoryID(found), err, in.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		if clash {
			errs.add("name", "A category with this name already exists")
		}
	}
	return errs.orNil(), nil
}

// Product normalises in and validates it.
func (v *Validator) Product(ctx context.Context, in *models.ProductInput, update bool) (Errors, error) {
	in.Normalize()
	errs := v.fields(in, productMessages)

	if update {
		if err := v.requireRow(errs, "id", in.ID, "Product", func(id string) error {
			_, err := v.store.Products.GetByID(ctx, id)
			return err
		}); err != nil {
			return nil, err
		}
	}

	if !errs.has("categoryId") {
		if err := v.requireRow(errs, "categoryId", in.CategoryID, "Category", func(id string) error {
			_, err := v.store.Categories.GetByID(ctx, id)
			return err
		}); err != nil {
			return nil, err
		}
	}

	if !errs.has("name") {
		in.Name = v.TitleCase(in.Name)
		found, err := v.store.Products.FindByName(ctx, in.Name)
		clash, err := conflicts(productID(found), err, in.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check product name: %w", err)
		}
		if clash {
			errs.add("name", "A product with this name already exists")
		}
	}

	checkMoney(errs, "unitCost", "Unit cost", in.UnitCost)
	checkMoney(errs, "unitPrice", "Unit price", in.UnitPrice)
	checkPrice(errs, in.UnitCost, in.UnitPrice)
	return errs.orNil(), nil
}

// Supplier normalises in and validates it. Name, phone and email must be
// unique among suppliers.
func (v *Validator) Supplier(ctx context.Context, in *models.SupplierInput, update bool) (Errors, error) {
	in.Normalize()
	errs := v.fields(in, supplierMessages)

	if update {
		if err := v.requireRow(errs, "id", in.ID, "Supplier", func(id string) error {
			_, err := v.store.Suppliers.GetByID(ctx, id)
			return err
		}); err != nil {
			return nil, err
		}
	}

	if !errs.has("name") {
		in.Name = v.TitleCase(in.Name)
		found, err := v.store.Suppliers.FindByName(ctx, in.Name)
		if err := v.unique(errs, "name", "A supplier with this name already exists", supplierID(found), err, in.ID); err != nil {
			return nil, err
		}
	}
	if !errs.has("phone") {
		found, err := v.store.Suppliers.FindByPhone(ctx, in.Phone)
		if err := v.unique(errs, "phone", "A supplier with this phone number already exists", supplierID(found), err, in.ID); err != nil {
			return nil, err
		}
	}
	if in.Email != "" && !errs.has("email") {
		found, err := v.store.Suppliers.FindByEmail(ctx, in.Email)
		if err := v.unique(errs, "email", "A supplier with this email address already exists", supplierID(found), err, in.ID); err != nil {
			return nil, err
		}
	}
	return errs.orNil(), nil
}

// Purchase normalises in and validates it. The referenced supplier and
// product must exist.
func (v *Validator) Purchase(ctx context.Context, in *models.PurchaseInput, update bool) (Errors, error) {
	in.Normalize()
	errs := v.fields(in, purchaseMessages)

	if update {
		if err := v.requireRow(errs, "id", in.ID, "Purchase", func(id string) error {
			_, err := v.store.Purchases.GetByID(ctx, id)
			return err
		}); err != nil {
			return nil, err
		}
	}
	if err := v.requireSupplier(ctx, errs, in.SupplierID); err != nil {
		return nil, err
	}
	if err := v.requireProduct(ctx, errs, in.ProductID); err != nil {
		return nil, err
	}

	checkMoney(errs, "unitCost", "Unit cost", in.UnitCost)
	checkMoney(errs, "unitPrice", "Unit price", in.UnitPrice)
	checkPrice(errs, in.UnitCost, in.UnitPrice)
	return errs.orNil(), nil
}

// Sale validates a new sale.
func (v *Validator) Sale(ctx context.Context, in *models.SaleInput) (Errors, error) {
	in.Normalize()
	errs := v.fields(in, saleMessages)
	if err := v.requireProduct(ctx, errs, in.ProductID); err != nil {
		return nil, err
	}
	return errs.orNil(), nil
}

// SaleUpdate validates a change of sale quantity.
func (v *Validator) SaleUpdate(ctx context.Context, in *models.SaleUpdateInput) (Errors, error) {
	in.Normalize()
	errs := v.fields(in, saleMessages)
	if err := v.requireRow(errs, "id", in.ID, "Sale", func(id string) error {
		_, err := v.store.Sales.GetByID(ctx, id)
		return err
	}); err != nil {
		return nil, err
	}
	return errs.orNil(), nil
}

// Transfer validates a new transfer.
func (v *Validator) Transfer(ctx context.Context, in *models.TransferInput) (Errors, error) {
	in.Normalize()
	errs := v.fields(in, transferMessages)
	if err := v.requireProduct(ctx, errs, in.ProductID); err != nil {
		return nil, err
	}
	return errs.orNil(), nil
}

func (v *Validator) requireSupplier(ctx context.Context, errs Errors, id string) error {
	if errs.has("supplierId") {
		return nil
	}
	return v.requireRow(errs, "supplierId", id, "Supplier", func(id string) error {
		_, err := v.store.Suppliers.GetByID(ctx, id)
		return err
	})
}

func (v *Validator) requireProduct(ctx context.Context, errs Errors, id string) error {
	if errs.has("productId") {
		return nil
	}
	return v.requireRow(errs, "productId", id, "Product", func(id string) error {
		_, err := v.store.Products.GetByID(ctx, id)
		return err
	})
}

// requireRow records a field error when id is empty or lookup does not find
// a row.
func (v *Validator) requireRow(errs Errors, field, id, entity string, lookup func(string) error) error {
	if id == "" {
		errs.add(field, entity+" id is required")
		return nil
	}
	found, err := exists(lookup(id))
	if err != nil {
		return fmt.Errorf("failed to look up %s: %w", entity, err)
	}
	if !found {
		errs.add(field, entity+" not found")
	}
	return nil
}

func (v *Validator) unique(errs Errors, field, message, foundID string, lookupErr error, id string) error {
	clash, err := conflicts(foundID, lookupErr, id)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", field, err)
	}
	if clash {
		errs.add(field, message)
	}
	return nil
}

func categoryID(c *models.Category) string {
	if c == nil {
		return ""
	}
	return c.ID
}

func productID(p *models.Product) string {
	if p == nil {
		return ""
	}
	return p.ID
}

func supplierID(s *models.Supplier) string {
	if s == nil {
		return ""
	}
	return s.ID
}
