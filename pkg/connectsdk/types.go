package connectsdk

// StatusResponse is the envelope shared by every response.
type StatusResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// ============================================================================
// Sign-up
// ============================================================================

// SignUpRequest is the body of POST /auth/sign-up.
type SignUpRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Regno     string `json:"regno"`
	Password  string `json:"password"`
}

// SignUpResponse carries the sign-up access token. The OTP itself is only
// ever mailed.
type SignUpResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// VerifySignUpRequest is the body of POST /auth/sign-up/verify.
type VerifySignUpRequest struct {
	// Token is the sign-up access token from SignUpResponse.
	Token string `json:"token"`
	OTP   string `json:"otp"`
}

// VerifySignUpResponse carries the user access token of the new account.
type VerifySignUpResponse struct {
	Status          bool   `json:"status"`
	Message         string `json:"message"`
	UserAccessToken string `json:"useraccesstoken"`
}

// ============================================================================
// Profile
// ============================================================================

// Profile is a student's public profile.
type Profile struct {
	Firstname       string  `json:"firstname"`
	Lastname        string  `json:"lastname"`
	Regno           string  `json:"regno"`
	ProfilePhotoURL *string `json:"profilePhotoUrl,omitempty"`
	Branch          *string `json:"branch,omitempty"`
	JoiningYear     *int    `json:"joiningYear,omitempty"`
}

// ProfileResponse is returned by GET /profile/public.
type ProfileResponse struct {
	Status  bool     `json:"status"`
	Message string   `json:"message"`
	Profile *Profile `json:"profile,omitempty"`
}

// UpdateProfileRequest is the body of POST /profile/public. Nil fields are
// left unchanged. Session.UpdatePublicProfile fills in Token.
type UpdateProfileRequest struct {
	Token           string  `json:"token"`
	ProfilePhotoURL *string `json:"profilePhotoUrl,omitempty"`
	Branch          *string `json:"branch,omitempty"`
	JoiningYear     *int    `json:"joiningYear,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency checked by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
}
