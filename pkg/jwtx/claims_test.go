package jwtx_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aussiebroadwan/connect/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "otp",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("otp"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		err := c.ValidateIssuer("token")
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()

	t.Run("valid window", func(t *testing.T) {
		c := jwtx.NewClaims("otp", nil, time.Hour, now)
		require.NoError(t, c.ValidateExpiry(now.Add(30*time.Minute)))
	})

	t.Run("expired", func(t *testing.T) {
		c := jwtx.NewClaims("otp", nil, time.Hour, now)
		require.ErrorIs(t, c.ValidateExpiry(now.Add(2*time.Hour)), jwtx.ErrExpired)
	})

	t.Run("exactly at exp", func(t *testing.T) {
		c := jwtx.NewClaims("otp", nil, time.Hour, now)
		require.ErrorIs(t, c.ValidateExpiry(now.Add(time.Hour)), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := jwtx.NewClaims("otp", nil, time.Hour, now)
		require.ErrorIs(t, c.ValidateExpiry(now.Add(-time.Minute)), jwtx.ErrNotYetValid)
	})

	t.Run("no expiry set", func(t *testing.T) {
		c := &jwtx.Claims{}
		require.NoError(t, c.ValidateExpiry(now))
	})
}

func TestNewClaims(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	data := json.RawMessage(`{"otp":"abc"}`)

	c := jwtx.NewClaims("otp", data, 24*time.Hour, now)
	require.Equal(t, "otp", c.Issuer)
	require.Equal(t, now, c.IssuedAt.Time)
	require.Equal(t, now.Add(24*time.Hour), c.ExpiresAt.Time)
	require.NotEmpty(t, c.ID)
	require.JSONEq(t, `{"otp":"abc"}`, string(c.Data))

	other := jwtx.NewClaims("otp", data, 24*time.Hour, now)
	require.NotEqual(t, c.ID, other.ID)
}
