package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/connect/internal/connect/domain"
)

type usersRepo struct {
	db  dbtx
	now func() time.Time
}

func (r *usersRepo) GetUserByRegNo(ctx context.Context, regno string) (domain.User, error) {
	const q = `SELECT id, firstname, lastname, regno, password_hash, created_at, updated_at
		FROM users WHERE regno = ?`

	var (
		u                domain.User
		created, updated int64
	)
	err := r.db.QueryRowContext(ctx, q, regno).Scan(
		&u.ID, &u.Firstname, &u.Lastname, &u.Regno, &u.PasswordHash, &created, &updated,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.CreatedAt = fromUnix(created)
	u.UpdatedAt = fromUnix(updated)
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	const q = `INSERT INTO users (id, firstname, lastname, regno, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	now := r.now().Unix()
	_, err := r.db.ExecContext(ctx, q, u.ID, u.Firstname, u.Lastname, u.Regno, u.PasswordHash, now, now)
	return mapConstraint(err)
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
