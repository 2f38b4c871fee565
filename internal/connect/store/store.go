package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/connect/internal/connect/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Drivers expose sub-repositories
// rather than one flat interface so a Tx-scoped store cannot open another
// transaction by accident.
type Store interface {
	Users() Users
	Profiles() Profiles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByRegNo matches regno case-insensitively.
	GetUserByRegNo(ctx context.Context, regno string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the regno is taken; this is the only
	// authoritative duplicate check.
	CreateUser(ctx context.Context, u domain.User) error

	CountUsers(ctx context.Context) (int, error)
}

type Profiles interface {
	GetProfile(ctx context.Context, regno string) (domain.PublicProfile, error)

	// CreateProfileIfMissing inserts p unless a profile for p.Regno exists.
	// An existing profile is never modified.
	CreateProfileIfMissing(ctx context.Context, p domain.PublicProfile) error

	// UpdateProfile applies the non-nil fields of u. Returns ErrNotFound
	// when there is no profile for regno.
	UpdateProfile(ctx context.Context, regno string, u domain.ProfileUpdate) error
}
