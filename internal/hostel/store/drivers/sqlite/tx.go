package sqlite

import (
	"context"
	"database/sql"

	"github.com/sharmapg/hostel/internal/hostel/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the caller commits or rolls back and the outer DB stays open.
func (t *txStore) Close() error { return nil }

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if ever needed.
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

// ApplyMigrations is a no-op; migrations are applied before any transaction starts.
func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Users() store.Users           { return &usersRepo{db: t.tx} }
func (t *txStore) Residents() store.Residents   { return &residentsRepo{db: t.tx} }
func (t *txStore) Inquiries() store.Inquiries   { return &inquiriesRepo{db: t.tx} }
func (t *txStore) Payments() store.Payments     { return &paymentsRepo{db: t.tx} }
func (t *txStore) RoomStatus() store.RoomStatus { return &roomStatusRepo{db: t.tx} }
