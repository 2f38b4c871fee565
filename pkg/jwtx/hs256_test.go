package jwtx_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/connect/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func testKey() []byte { return bytes.Repeat([]byte{0x42}, jwtx.MinHS256KeySize) }

func TestHS256_SignAndVerify(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	h, err := jwtx.NewHS256(testKey(), func() time.Time { return now })
	require.NoError(t, err)

	claims := jwtx.NewClaims("token", json.RawMessage(`{"regno":"21BCE1111"}`), time.Hour, now)
	tok, err := h.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(tok, "."))

	unverified, _, err := jwt.NewParser().ParseUnverified(tok, &jwt.RegisteredClaims{})
	require.NoError(t, err)
	require.Equal(t, "HS256", unverified.Method.Alg())

	got, err := h.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "token", got.Issuer)
	require.Equal(t, claims.ID, got.ID)
	require.JSONEq(t, `{"regno":"21BCE1111"}`, string(got.Data))
}

func TestHS256_RejectsShortKey(t *testing.T) {
	_, err := jwtx.NewHS256([]byte("short"), nil)
	require.ErrorIs(t, err, jwtx.ErrWeakKey)
}

func TestHS256_Expired(t *testing.T) {
	issued := time.Unix(1700000000, 0).UTC()
	now := issued
	h, err := jwtx.NewHS256(testKey(), func() time.Time { return now })
	require.NoError(t, err)

	tok, err := h.Sign(jwtx.NewClaims("otp", nil, time.Hour, issued))
	require.NoError(t, err)

	now = issued.Add(2 * time.Hour)
	_, err = h.Verify(tok)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestHS256_WrongKey(t *testing.T) {
	now := time.Now().UTC()
	signer, err := jwtx.NewHS256(testKey(), nil)
	require.NoError(t, err)
	verifier, err := jwtx.NewHS256(bytes.Repeat([]byte{0x43}, 32), nil)
	require.NoError(t, err)

	tok, err := signer.Sign(jwtx.NewClaims("otp", nil, time.Hour, now))
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestHS256_Malformed(t *testing.T) {
	h, err := jwtx.NewHS256(testKey(), nil)
	require.NoError(t, err)

	_, err = h.Verify("not.a.jwt")
	require.ErrorIs(t, err, jwtx.ErrMalformed)

	_, err = h.Verify("")
	require.Error(t, err)
}

func TestHS256_RejectsNoneAlg(t *testing.T) {
	h, err := jwtx.NewHS256(testKey(), nil)
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwtx.NewClaims("otp", nil, time.Hour, time.Now()))
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = h.Verify(tok)
	require.Error(t, err)
	require.NotErrorIs(t, err, jwtx.ErrExpired)
}

func TestHS256_RequiresExpiry(t *testing.T) {
	h, err := jwtx.NewHS256(testKey(), nil)
	require.NoError(t, err)

	tok, err := h.Sign(jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "otp"}})
	require.NoError(t, err)

	_, err = h.Verify(tok)
	require.Error(t, err)
}
