package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/connect/internal/connect/store"
)

type txStore struct {
	tx  *sql.Tx
	now func() time.Time
}

func newTx(tx *sql.Tx, now func() time.Time) *txStore {
	return &txStore{tx: tx, now: now}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the caller commits or rolls back and the DB stays open.
func (t *txStore) Close() error { return nil }

// Ping is a no-op for transactions; the connection is already held.
func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users       { return &usersRepo{db: t.tx, now: t.now} }
func (t *txStore) Profiles() store.Profiles { return &profilesRepo{db: t.tx, now: t.now} }

// ApplyMigrations is a no-op; migrations run before any transaction opens.
func (t *txStore) ApplyMigrations() error { return nil }
