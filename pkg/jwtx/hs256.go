package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinHS256KeySize is the smallest HMAC key accepted, matching the SHA-256
// output size.
const MinHS256KeySize = 32

// HS256 signs and verifies JWTs with a shared HMAC-SHA256 key.
type HS256 struct {
	key []byte
	now func() time.Time
}

// NewHS256 creates a signer/verifier for key. now supplies the time used
// for exp/nbf checks; nil means time.Now.
func NewHS256(key []byte, now func() time.Time) (*HS256, error) {
	if len(key) < MinHS256KeySize {
		return nil, ErrWeakKey
	}
	if now == nil {
		now = time.Now
	}

	k := make([]byte, len(key))
	copy(k, key)
	return &HS256{key: k, now: now}, nil
}

// Sign serialises claims into a compact HS256 JWT.
func (h *HS256) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.key)
}

// Verify checks the signature first and only then exp/nbf, so ErrExpired
// always refers to a token this key actually signed.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(h.now),
		jwt.WithExpirationRequired(),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return h.key, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateExpiry(h.now()); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrAlgMismatch, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrInvalidSig, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return fmt.Errorf("%w: %v", ErrNotYetValid, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidClaim, err)
	}
}
