// Package db provides database utilities: transaction management with
// context propagation, and common query scopes.
package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type txKey struct{}

// TransactionManager runs units of work inside a single database
// transaction. The transaction travels through the context so that every
// repository call inside fn shares it; a returned error rolls everything
// back.
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a TransactionManager over db.
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn within a transaction, committing on nil and
// rolling back on error.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTxFromContext returns the transaction carried by ctx, or defaultDB when
// the caller is not inside a transaction.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}

// ForUpdate adds a row-level write lock to the query. Only meaningful inside
// a transaction; sqlite ignores it, which is fine for single-writer tests.
func ForUpdate() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
}
