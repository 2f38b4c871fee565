package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/connect/internal/connect/domain"
	"github.com/aussiebroadwan/connect/internal/connect/store"
)

type profilesRepo struct {
	db  dbtx
	now func() time.Time
}

func (r *profilesRepo) GetProfile(ctx context.Context, regno string) (domain.PublicProfile, error) {
	const q = `SELECT firstname, lastname, regno, profile_photo_url, branch, joining_year, created_at, updated_at
		FROM public_profiles WHERE regno = ?`

	var (
		p                domain.PublicProfile
		photo, branch    sql.NullString
		year             sql.NullInt64
		created, updated int64
	)
	err := r.db.QueryRowContext(ctx, q, regno).Scan(
		&p.Firstname, &p.Lastname, &p.Regno, &photo, &branch, &year, &created, &updated,
	)
	if err != nil {
		return domain.PublicProfile{}, mapNotFound(err)
	}

	p.ProfilePhotoURL = nullStringPtr(photo)
	p.Branch = nullStringPtr(branch)
	p.JoiningYear = nullIntPtr(year)
	p.CreatedAt = fromUnix(created)
	p.UpdatedAt = fromUnix(updated)
	return p, nil
}

func (r *profilesRepo) CreateProfileIfMissing(ctx context.Context, p domain.PublicProfile) error {
	const q = `INSERT INTO public_profiles
		(regno, firstname, lastname, profile_photo_url, branch, joining_year, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(regno) DO NOTHING`

	now := r.now().Unix()
	_, err := r.db.ExecContext(ctx, q,
		p.Regno, p.Firstname, p.Lastname,
		optionalString(p.ProfilePhotoURL), optionalString(p.Branch), optionalInt(p.JoiningYear),
		now, now,
	)
	return err
}

func (r *profilesRepo) UpdateProfile(ctx context.Context, regno string, u domain.ProfileUpdate) error {
	const q = `UPDATE public_profiles SET
		profile_photo_url = COALESCE(?, profile_photo_url),
		branch            = COALESCE(?, branch),
		joining_year      = COALESCE(?, joining_year),
		updated_at        = ?
		WHERE regno = ?`

	res, err := r.db.ExecContext(ctx, q,
		optionalString(u.ProfilePhotoURL), optionalString(u.Branch), optionalInt(u.JoiningYear),
		r.now().Unix(), regno,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
