package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/connect/internal/connect/domain"
	"github.com/aussiebroadwan/connect/internal/connect/mail"
	"github.com/aussiebroadwan/connect/internal/connect/store"
	"github.com/aussiebroadwan/connect/pkg/cryptox"
	"github.com/aussiebroadwan/connect/pkg/idx"
	"github.com/aussiebroadwan/connect/pkg/slogx"
)

// DefaultOTPLength is the number of characters in a sign-up code.
const DefaultOTPLength = 10

// SignUpRequest is the unverified input of the first sign-up step.
type SignUpRequest struct {
	Firstname string
	Lastname  string
	Regno     string
	Password  string
}

// RegistrationService runs the two-step email OTP sign-up. No pending
// state is stored server side: everything needed to finish the sign-up
// travels with the client inside the sign-up access token.
type RegistrationService struct {
	Store     store.Store
	Tokens    *TokenService
	OTPCodec  *cryptox.Codec
	Mailer    mail.Dispatcher
	Templates *mail.Templates
	Address   AddressResolver
	Validator *Validator
	Passwords cryptox.PasswordHasher

	// From is the sender address of sign-up mail.
	From string

	// OTPLength defaults to DefaultOTPLength.
	OTPLength int

	// OTP overrides code generation. Nil means cryptox.GenerateCode.
	OTP func() (string, error)
}

// SignUp validates the request, mails a fresh OTP to the student's
// institutional address and returns the sign-up access token. The OTP is
// never returned to the caller.
func (s *RegistrationService) SignUp(ctx context.Context, req SignUpRequest) (string, error) {
	log := slogx.FromContext(ctx)

	firstname := strings.TrimSpace(req.Firstname)
	lastname := strings.TrimSpace(req.Lastname)
	regno := strings.TrimSpace(req.Regno)

	if ContainsEmpty(firstname, lastname, regno, req.Password) {
		return "", ErrInvalidCredentials
	}
	if !s.validator().IsRegNo(regno) || !IsAlpha(firstname) || !IsAlpha(lastname) {
		return "", ErrInvalidCredentials
	}

	_, err := s.Store.Users().GetUserByRegNo(ctx, regno)
	switch {
	case err == nil:
		return "", ErrUserAlreadyRegistered
	case !errors.Is(err, store.ErrNotFound):
		return "", fmt.Errorf("lookup user: %w", err)
	}

	otp, err := s.generateOTP()
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}

	encryptedOTP, err := s.OTPCodec.Encrypt(domain.OTPClaim{OTP: otp})
	if err != nil {
		return "", fmt.Errorf("seal otp: %w", err)
	}

	token, err := s.Tokens.IssueRegistration(domain.RegistrationClaim{
		Firstname:    firstname,
		Lastname:     lastname,
		Regno:        regno,
		Password:     req.Password,
		EncryptedOTP: encryptedOTP,
	})
	if err != nil {
		return "", err
	}

	subject, html, err := s.Templates.Render(mail.SignUpOTP, mail.SignUpOTPData{
		Name:     strings.ToLower(firstname) + " " + lastname,
		OTP:      otp,
		ValidFor: s.OTPCodec.TTL(),
	})
	if err != nil {
		return "", err
	}

	to := s.Address.Address(firstname, regno)
	if err := s.Mailer.Send(ctx, mail.Message{From: s.From, To: to, Subject: subject, HTML: html}); err != nil {
		return "", fmt.Errorf("send sign-up otp: %w", err)
	}

	log.Info("sign-up otp sent", "regno", regno)
	return token, nil
}

// VerifySignUp checks otp against the code sealed in claim and, on a
// match, creates the account and returns a user access token. claim must
// come from a verified sign-up access token.
func (s *RegistrationService) VerifySignUp(ctx context.Context, claim domain.RegistrationClaim, otp string) (string, error) {
	log := slogx.FromContext(ctx)

	if ContainsEmpty(otp) {
		return "", ErrInvalidCredentials
	}

	var sealed domain.OTPClaim
	if err := s.OTPCodec.Decrypt(claim.EncryptedOTP, &sealed); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSignUpToken, err)
	}

	if subtle.ConstantTimeCompare([]byte(sealed.OTP), []byte(otp)) != 1 {
		return "", ErrIncorrectOTP
	}

	hash, err := s.Passwords.Hash(claim.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	err = s.Store.Users().CreateUser(ctx, domain.User{
		ID:           idx.New().String(),
		Firstname:    claim.Firstname,
		Lastname:     claim.Lastname,
		Regno:        claim.Regno,
		PasswordHash: hash,
	})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return "", ErrUserAlreadyRegistered
	case err != nil:
		return "", fmt.Errorf("create user: %w", err)
	}

	log.Info("user registered", "regno", claim.Regno)

	return s.Tokens.IssueSession(domain.SessionClaim{
		Firstname: claim.Firstname,
		Lastname:  claim.Lastname,
		Regno:     claim.Regno,
	})
}

func (s *RegistrationService) validator() *Validator {
	if s.Validator != nil {
		return s.Validator
	}
	return defaultValidator
}

func (s *RegistrationService) generateOTP() (string, error) {
	if s.OTP != nil {
		return s.OTP()
	}
	n := s.OTPLength
	if n <= 0 {
		n = DefaultOTPLength
	}
	return cryptox.GenerateCode(n, cryptox.AlphaNumeric)
}
