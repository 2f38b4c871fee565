package cryptox_test

import (
	"bytes"
	"encoding/base64"
	"testing"
	"time"

	"github.com/aussiebroadwan/connect/internal/dependencies/mocks"
	"github.com/aussiebroadwan/connect/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

type otpPayload struct {
	OTP string `json:"otp"`
}

func secret(b byte) []byte { return bytes.Repeat([]byte{b}, 32) }

func newCodec(t *testing.T, name string, s []byte, ttl time.Duration, opts ...cryptox.CodecOption) *cryptox.Codec {
	t.Helper()
	c, err := cryptox.NewCodec(name, s, ttl, opts...)
	require.NoError(t, err)
	return c
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newCodec(t, "otp", secret(1), 24*time.Hour)

	tok, err := c.Encrypt(otpPayload{OTP: "aB3dE5gH7j"})
	require.NoError(t, err)
	require.NotContains(t, tok, "aB3dE5gH7j")

	_, err = base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err, "token must be url-safe base64")

	var out otpPayload
	require.NoError(t, c.Decrypt(tok, &out))
	require.Equal(t, "aB3dE5gH7j", out.OTP)
}

func TestCodec_FreshNonces(t *testing.T) {
	c := newCodec(t, "otp", secret(1), time.Hour)

	a, err := c.Encrypt(otpPayload{OTP: "same"})
	require.NoError(t, err)
	b, err := c.Encrypt(otpPayload{OTP: "same"})
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestCodec_Expiry(t *testing.T) {
	clk := mocks.NewMockClock(time.Unix(1700000000, 0).UTC())
	c := newCodec(t, "otp", secret(1), 24*time.Hour, cryptox.WithClock(clk.Now))

	tok, err := c.Encrypt(otpPayload{OTP: "x"})
	require.NoError(t, err)

	clk.Advance(23 * time.Hour)
	var out otpPayload
	require.NoError(t, c.Decrypt(tok, &out))

	clk.Advance(2 * time.Hour)
	err = c.Decrypt(tok, &out)
	require.ErrorIs(t, err, cryptox.ErrTokenExpired)
	require.NotErrorIs(t, err, cryptox.ErrTokenInvalid)
}

func TestCodec_Tampering(t *testing.T) {
	c := newCodec(t, "token", secret(2), time.Hour)

	tok, err := c.Encrypt(map[string]string{"regno": "21BCE1111"})
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)

	for _, idx := range []int{0, len(raw) / 2, len(raw) - 1} {
		mutated := bytes.Clone(raw)
		mutated[idx] ^= 0x01

		var out map[string]string
		err := c.Decrypt(base64.RawURLEncoding.EncodeToString(mutated), &out)
		require.ErrorIs(t, err, cryptox.ErrTokenInvalid, "byte %d", idx)
		require.NotErrorIs(t, err, cryptox.ErrTokenExpired)
	}
}

func TestCodec_Garbage(t *testing.T) {
	c := newCodec(t, "token", secret(2), time.Hour)

	inputs := []string{
		"",
		"   ",
		"not base64 !!",
		base64.RawURLEncoding.EncodeToString([]byte("short")),
		base64.RawURLEncoding.EncodeToString(bytes.Repeat([]byte{0}, 64)),
	}
	for _, in := range inputs {
		var out map[string]any
		require.ErrorIs(t, c.Decrypt(in, &out), cryptox.ErrTokenInvalid, "input %q", in)
	}
}

func TestCodec_KindsAreIndependent(t *testing.T) {
	shared := secret(3)
	otp := newCodec(t, "otp", shared, time.Hour)
	tok := newCodec(t, "token", shared, time.Hour)

	sealed, err := otp.Encrypt(otpPayload{OTP: "abc"})
	require.NoError(t, err)

	var out otpPayload
	require.ErrorIs(t, tok.Decrypt(sealed, &out), cryptox.ErrTokenInvalid)
	require.NoError(t, otp.Decrypt(sealed, &out))
}

func TestCodec_WrongSecret(t *testing.T) {
	a := newCodec(t, "otp", secret(4), time.Hour)
	b := newCodec(t, "otp", secret(5), time.Hour)

	sealed, err := a.Encrypt(otpPayload{OTP: "abc"})
	require.NoError(t, err)

	var out otpPayload
	require.ErrorIs(t, b.Decrypt(sealed, &out), cryptox.ErrTokenInvalid)
}

func TestCodec_PayloadShapeMismatch(t *testing.T) {
	c := newCodec(t, "otp", secret(6), time.Hour)

	sealed, err := c.Encrypt([]int{1, 2, 3})
	require.NoError(t, err)

	var out otpPayload
	require.ErrorIs(t, c.Decrypt(sealed, &out), cryptox.ErrTokenInvalid)
}

func TestNewCodec_Validation(t *testing.T) {
	_, err := cryptox.NewCodec("otp", []byte("short"), time.Hour)
	require.ErrorIs(t, err, cryptox.ErrWeakSecret)

	_, err = cryptox.NewCodec("", secret(1), time.Hour)
	require.Error(t, err)

	_, err = cryptox.NewCodec("otp", secret(1), 0)
	require.Error(t, err)
}
