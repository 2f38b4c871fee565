package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// AlphaNumeric is the default alphabet for one-time codes.
const AlphaNumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCode returns length characters drawn uniformly from alphabet using
// crypto/rand.
func GenerateCode(length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("code length must be positive, got %d", length)
	}
	if len(alphabet) < 2 {
		return "", fmt.Errorf("alphabet too small: %d symbols", len(alphabet))
	}

	max := big.NewInt(int64(len(alphabet)))
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random code: %w", err)
		}
		code[i] = alphabet[n.Int64()]
	}
	return string(code), nil
}

// GenerateSecret returns size random bytes, suitable as a codec secret.
func GenerateSecret(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret size must be positive, got %d", size)
	}
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}
	return b, nil
}
