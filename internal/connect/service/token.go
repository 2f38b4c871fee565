package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/connect/internal/connect/domain"
	"github.com/aussiebroadwan/connect/pkg/cryptox"
)

// TokenService issues and verifies the opaque tokens handed to clients.
// Every token records its kind, so a sign-up token is never accepted where
// a user token is expected and vice versa.
type TokenService struct {
	Codec *cryptox.Codec
}

type tokenEnvelope struct {
	Kind  domain.TokenKind `json:"kind"`
	Claim json.RawMessage  `json:"claim"`
}

// Issue seals claim as a token of the given kind.
func (s *TokenService) Issue(kind domain.TokenKind, claim any) (string, error) {
	raw, err := json.Marshal(claim)
	if err != nil {
		return "", fmt.Errorf("encode %s claim: %w", kind, err)
	}

	tok, err := s.Codec.Encrypt(tokenEnvelope{Kind: kind, Claim: raw})
	if err != nil {
		return "", fmt.Errorf("issue %s token: %w", kind, err)
	}
	return tok, nil
}

// Verify opens token, checks its kind and decodes the claim into out.
// Codec failures are wrapped, so errors.Is(err, cryptox.ErrTokenExpired)
// still works on the result.
func (s *TokenService) Verify(kind domain.TokenKind, token string, out any) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyCredential
	}

	var env tokenEnvelope
	if err := s.Codec.Decrypt(token, &env); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if env.Kind != kind {
		return fmt.Errorf("%w: want %s token, got %q", ErrInvalidToken, kind, env.Kind)
	}
	if err := json.Unmarshal(env.Claim, out); err != nil {
		return fmt.Errorf("%w: claim: %v", ErrInvalidToken, err)
	}
	return nil
}

func (s *TokenService) IssueRegistration(c domain.RegistrationClaim) (string, error) {
	return s.Issue(domain.TokenKindSignUp, c)
}

func (s *TokenService) IssueSession(c domain.SessionClaim) (string, error) {
	return s.Issue(domain.TokenKindUser, c)
}

// VerifyRegistration decodes a sign-up access token.
func (s *TokenService) VerifyRegistration(_ context.Context, token string) (domain.RegistrationClaim, error) {
	var c domain.RegistrationClaim
	if err := s.Verify(domain.TokenKindSignUp, token, &c); err != nil {
		return domain.RegistrationClaim{}, err
	}
	if ContainsEmpty(c.Regno, c.EncryptedOTP) {
		return domain.RegistrationClaim{}, fmt.Errorf("%w: incomplete registration claim", ErrInvalidToken)
	}
	return c, nil
}

// VerifySession decodes a user access token.
func (s *TokenService) VerifySession(_ context.Context, token string) (domain.SessionClaim, error) {
	var c domain.SessionClaim
	if err := s.Verify(domain.TokenKindUser, token, &c); err != nil {
		return domain.SessionClaim{}, err
	}
	if ContainsEmpty(c.Regno) {
		return domain.SessionClaim{}, fmt.Errorf("%w: incomplete session claim", ErrInvalidToken)
	}
	return c, nil
}
