package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/connect/internal/connect/domain"
	"github.com/aussiebroadwan/connect/internal/connect/store"
	"github.com/aussiebroadwan/connect/internal/connect/store/drivers/sqlite"
	"github.com/aussiebroadwan/connect/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func ptr[T any](v T) *T { return &v }

func testUser(regno string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Firstname:    "Asha",
		Lastname:     "Rao",
		Regno:        regno,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	}
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())

	v, dirty, err := s.MigrationVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.EqualValues(t, 1, v)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	at := time.Unix(1700000000, 0).UTC()
	s.WithClock(func() time.Time { return at })

	_, err := s.Users().GetUserByRegNo(ctx, "21BCE1111")
	require.ErrorIs(t, err, store.ErrNotFound)

	u := testUser("21BCE1111")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByRegNo(ctx, "21bce1111")
	require.NoError(t, err, "regno lookup is case-insensitive")
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "21BCE1111", got.Regno)
	require.Equal(t, u.PasswordHash, got.PasswordHash)
	require.Equal(t, at, got.CreatedAt)

	n, err := s.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestCreateUserDuplicateRegno(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Users().CreateUser(ctx, testUser("21BCE1111")))

	err := s.Users().CreateUser(ctx, testUser("21BCE1111"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	err = s.Users().CreateUser(ctx, testUser("21bce1111"))
	require.ErrorIs(t, err, store.ErrAlreadyExists, "case variants collide")

	n, err := s.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestProfiles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	profiles := s.Profiles()

	_, err := profiles.GetProfile(ctx, "21BCE1111")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = profiles.UpdateProfile(ctx, "21BCE1111", domain.ProfileUpdate{Branch: ptr("CSE")})
	require.ErrorIs(t, err, store.ErrNotFound)

	base := domain.PublicProfile{Firstname: "Asha", Lastname: "Rao", Regno: "21BCE1111"}
	require.NoError(t, profiles.CreateProfileIfMissing(ctx, base))

	got, err := profiles.GetProfile(ctx, "21BCE1111")
	require.NoError(t, err)
	require.Equal(t, "Asha", got.Firstname)
	require.Nil(t, got.Branch)
	require.Nil(t, got.JoiningYear)

	require.NoError(t, profiles.UpdateProfile(ctx, "21BCE1111", domain.ProfileUpdate{
		Branch:      ptr("CSE"),
		JoiningYear: ptr(2021),
	}))

	// A second create must not clobber the stored values.
	require.NoError(t, profiles.CreateProfileIfMissing(ctx, base))

	got, err = profiles.GetProfile(ctx, "21BCE1111")
	require.NoError(t, err)
	require.Equal(t, "CSE", *got.Branch)
	require.Equal(t, 2021, *got.JoiningYear)
	require.Nil(t, got.ProfilePhotoURL)

	// Nil fields leave stored values alone.
	require.NoError(t, profiles.UpdateProfile(ctx, "21BCE1111", domain.ProfileUpdate{
		ProfilePhotoURL: ptr("https://cdn.example.com/a.png"),
	}))

	got, err = profiles.GetProfile(ctx, "21BCE1111")
	require.NoError(t, err)
	require.Equal(t, "CSE", *got.Branch)
	require.Equal(t, 2021, *got.JoiningYear)
	require.Equal(t, "https://cdn.example.com/a.png", *got.ProfilePhotoURL)
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("commit", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.Users().CreateUser(ctx, testUser("21BCE0001"))
		})
		require.NoError(t, err)

		_, err = s.Users().GetUserByRegNo(ctx, "21BCE0001")
		require.NoError(t, err)
	})

	t.Run("rollback", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Users().CreateUser(ctx, testUser("21BCE0002")); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = s.Users().GetUserByRegNo(ctx, "21BCE0002")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("no nesting", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Tx(ctx)
			return err
		})
		require.Error(t, err)
	})
}

func TestPing(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Ping(context.Background()))
}
