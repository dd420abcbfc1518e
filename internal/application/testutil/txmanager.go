package testutil

import (
	"testing"

	"thali/internal/infrastructure/database"
	"thali/internal/shared/db"
)

// NewTxManager returns a TransactionManager over an in-memory sqlite
// database. The fakes ignore the transaction in the context; the manager
// only provides the commit/rollback boundary the use cases expect.
func NewTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gormDB, err := database.OpenSQLite()
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	return db.NewTransactionManager(gormDB)
}
