package connectsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Messages the API answers with. They are part of the wire contract.
const (
	MsgOTPSent             = "OTP sent to email address"
	MsgUserAccountCreated  = "User Account Created"
	MsgReturningProfile    = "Returning Public Profile"
	MsgProfileUpdated      = "Profile Updated"
	MsgInvalidCredentials  = "Invalid Credentials"
	MsgUserAlreadyExists   = "User already registered"
	MsgInvalidSignUpToken  = "Invalid signUpAccessToken"
	MsgIncorrectOTP        = "Incorrect OTP"
	MsgInvalidToken        = "Invalid Token"
	MsgInvalidProfile      = "Invalid Profile Details"
	MsgInternalServerError = "Internal Server Error"
)

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("connect: %d %s", e.StatusCode, e.Message)
}

// Is matches on status code and message so the predefined errors work with
// errors.Is.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Message == t.Message
}

var (
	ErrInvalidCredentials = &APIError{StatusCode: http.StatusBadRequest, Message: MsgInvalidCredentials}
	ErrUserAlreadyExists  = &APIError{StatusCode: http.StatusBadRequest, Message: MsgUserAlreadyExists}
	ErrInvalidSignUpToken = &APIError{StatusCode: http.StatusBadRequest, Message: MsgInvalidSignUpToken}
	ErrIncorrectOTP       = &APIError{StatusCode: http.StatusBadRequest, Message: MsgIncorrectOTP}
	ErrInvalidToken       = &APIError{StatusCode: http.StatusBadRequest, Message: MsgInvalidToken}
	ErrInvalidProfile     = &APIError{StatusCode: http.StatusBadRequest, Message: MsgInvalidProfile}
	ErrInternal           = &APIError{StatusCode: http.StatusInternalServerError, Message: MsgInternalServerError}
)

// parseErrorResponse turns a non-2xx response body into an *APIError,
// falling back to the status text when the body is not an envelope.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var env StatusResponse
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
