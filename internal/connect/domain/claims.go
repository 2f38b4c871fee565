package domain

// TokenKind separates the two uses of the token codec. A token minted for
// one kind never verifies as the other.
type TokenKind string

const (
	TokenKindSignUp TokenKind = "sign_up_access"
	TokenKindUser   TokenKind = "user_access"
)

// RegistrationClaim is the pending sign-up, carried by the client inside a
// sign-up access token. The password is plaintext here and only hashed once
// the OTP is verified.
type RegistrationClaim struct {
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	Regno        string `json:"regno"`
	Password     string `json:"password"`
	EncryptedOTP string `json:"encryptedOtp"`
}

func (c RegistrationClaim) Subject() string { return c.Regno }

// OTPClaim is sealed separately with the OTP codec and nested inside the
// registration claim.
type OTPClaim struct {
	OTP string `json:"otp"`
}

// SessionClaim identifies a verified user on every protected request.
type SessionClaim struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Regno     string `json:"regno"`
}

func (c SessionClaim) Subject() string { return c.Regno }
