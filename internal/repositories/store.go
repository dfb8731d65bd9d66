package repositories

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Store groups the repositories that share one database handle. A Store
// bound to a transaction is handed to Transaction callbacks.
type Store struct {
	db        *gorm.DB
	txOptions *sql.TxOptions

	Categories CategoryRepository
	Products   ProductRepository
	Suppliers  SupplierRepository
	Purchases  PurchaseRepository
	Sales      SaleRepository
	Transfers  TransferRepository
	Users      UserRepository
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIsolation pins the isolation level of every transaction started by
// the store. sql.LevelDefault leaves the driver default in place.
func WithIsolation(level sql.IsolationLevel) StoreOption {
	return func(s *Store) {
		if level == sql.LevelDefault {
			s.txOptions = nil
			return
		}
		s.txOptions = &sql.TxOptions{Isolation: level}
	}
}

// NewStore creates the GORM repositories on db.
func NewStore(db *gorm.DB, opts ...StoreOption) *Store {
	s := bind(db)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func bind(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Categories: NewGORMCategoryRepository(db),
		Products:   NewGORMProductRepository(db),
		Suppliers:  NewGORMSupplierRepository(db),
		Purchases:  NewGORMPurchaseRepository(db),
		Sales:      NewGORMSaleRepository(db),
		Transfers:  NewGORMTransferRepository(db),
		Users:      NewGORMUserRepository(db),
	}
}

// Transaction runs fn inside one database transaction. Every repository of
// the Store passed to fn uses that transaction. The transaction is rolled
// back when fn returns an error or panics.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	run := func(tx *gorm.DB) error {
		txStore := bind(tx)
		txStore.txOptions = s.txOptions
		return fn(txStore)
	}
	if s.txOptions != nil {
		return s.db.WithContext(ctx).Transaction(run, s.txOptions)
	}
	return s.db.WithContext(ctx).Transaction(run)
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
