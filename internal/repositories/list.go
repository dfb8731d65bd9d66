package repositories

import (
	"context"
	"strings"

	"inventory/internal/models"
	"inventory/internal/query"

	"gorm.io/gorm"
)

type scope = func(*gorm.DB) *gorm.DB

// listRows counts the rows matching scopes and params, then loads the
// requested page of them.
func listRows[T any](ctx context.Context, db *gorm.DB, params query.Params, scopes []scope, preloads ...string) ([]T, int64, error) {
	base := func() *gorm.DB {
		return db.WithContext(ctx).Model(new(T)).Scopes(scopes...).Scopes(createdBetween(params))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sort := params.Sort
	if len(sort) == 0 {
		sort = query.DefaultSort
	}
	q := base().Order(query.OrderClause(sort))
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if params.Page != nil {
		q = q.Limit(params.Page.Limit).Offset(params.Page.Offset())
	}

	rows := make([]T, 0)
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func createdBetween(params query.Params) scope {
	return func(db *gorm.DB) *gorm.DB {
		if params.From != nil {
			db = db.Where("created_at >= ?", params.From.UTC())
		}
		if params.To != nil {
			db = db.Where("created_at <= ?", params.To.UTC())
		}
		return db
	}
}

func nameContains(column, value string) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER("+column+") LIKE ?", likePattern(value))
	}
}

// idsWhereNameContains restricts fk to the ids of table rows whose name
// contains value.
func idsWhereNameContains(fk, table, value string) scope {
	return func(db *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Table(table).
			Select("id").
			Where("LOWER(name) LIKE ?", likePattern(value))
		return db.Where(fk+" IN (?)", sub)
	}
}

func likePattern(value string) string {
	return "%" + strings.ToLower(strings.TrimSpace(value)) + "%"
}

// deleteLedger removes the purchases, sales and transfers of products.
func deleteLedger(tx *gorm.DB, productIDs []string) error {
	if len(productIDs) == 0 {
		return nil
	}
	for _, model := range ledgerModels() {
		if err := tx.Where("product_id IN ?", productIDs).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func ledgerModels() []interface{} {
	return []interface{}{&models.Purchase{}, &models.Sale{}, &models.Transfer{}}
}
