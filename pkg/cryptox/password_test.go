package cryptox

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

func testHasher() PasswordHasher { return PasswordHasher{Pepper: "test-pepper"} }

// matches recomputes the Argon2id key for password with the salt stored in
// encoded and reports whether it equals the stored key.
func matches(t *testing.T, h PasswordHasher, password, encoded string) bool {
	t.Helper()

	parts := strings.Split(encoded, "$")
	require.Len(t, parts, 6)

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	require.NoError(t, err)
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	require.NoError(t, err)

	got := argon2.IDKey([]byte(password+h.Pepper), salt, iterations, memory, parallelism, keyLength)
	return string(got) == string(want)
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	h := testHasher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"), "hash should be in PHC format")

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6)
			require.Equal(t, "argon2id", parts[1])
			require.Equal(t, "m=19456,t=2,p=1", parts[3])
			require.NotEmpty(t, parts[4], "salt should not be empty")
			require.NotEmpty(t, parts[5], "hash should not be empty")

			require.True(t, matches(t, h, tt.password, hash))
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h := testHasher()

	hash1, err := h.Hash("samepassword")
	require.NoError(t, err)
	hash2, err := h.Hash("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
	require.True(t, matches(t, h, "samepassword", hash1))
	require.True(t, matches(t, h, "samepassword", hash2))
}

func TestHashPassword_WrongPasswordDiffers(t *testing.T) {
	h := testHasher()
	hash, err := h.Hash("correct-password")
	require.NoError(t, err)

	for _, wrong := range []string{"wrong-password", "Correct-Password", "correct-password ", "", "a"} {
		require.False(t, matches(t, h, wrong, hash), "input %q", wrong)
	}
}

func TestHashPassword_PepperMatters(t *testing.T) {
	hash, err := testHasher().Hash("secret")
	require.NoError(t, err)

	require.False(t, matches(t, PasswordHasher{Pepper: "other-pepper"}, "secret", hash))
}
