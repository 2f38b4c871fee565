package service

import "errors"

var (
	// ErrInvalidCredentials covers missing, blank or malformed sign-up input.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserAlreadyRegistered = errors.New("user already registered")

	// ErrInvalidSignUpToken means the OTP sealed inside an otherwise valid
	// registration token could not be opened (expired or corrupt).
	ErrInvalidSignUpToken = errors.New("invalid sign up access token")

	ErrIncorrectOTP = errors.New("incorrect otp")

	ErrEmptyCredential = errors.New("empty credential")
	ErrInvalidToken    = errors.New("invalid token")
)
