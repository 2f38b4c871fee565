package connect_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/connect/pkg/connectsdk"
	"github.com/stretchr/testify/require"
)

func asha() connectsdk.SignUpRequest {
	return connectsdk.SignUpRequest{Firstname: "Asha", Lastname: "Rao", Regno: "21BCE1111", Password: "hunter2hunter2"}
}

// TestSignUpFlow walks the wrong-then-right OTP scenario and checks that a
// replay does not create a second account.
func TestSignUpFlow(t *testing.T) {
	s := setupStack(t, stackOptions{})
	client := connectsdk.NewClient(s.BaseURL)
	ctx := t.Context()

	signUp, err := client.SignUp(ctx, asha())
	require.NoError(t, err)
	require.True(t, signUp.Status)
	require.Equal(t, connectsdk.MsgOTPSent, signUp.Message)

	otp := waitForOTP(t, s, studentAddress("Asha", "21BCE1111"))
	require.Len(t, otp, 10)
	require.NotContains(t, signUp.Token, otp)

	_, err = client.VerifySignUp(ctx, signUp.Token, "000000")
	require.ErrorIs(t, err, connectsdk.ErrIncorrectOTP)

	session, err := client.VerifySignUp(ctx, signUp.Token, otp)
	require.NoError(t, err)
	require.NotEmpty(t, session.Token())
	require.NotEqual(t, signUp.Token, session.Token())

	_, err = client.VerifySignUp(ctx, signUp.Token, otp)
	require.ErrorIs(t, err, connectsdk.ErrUserAlreadyExists)

	_, err = client.SignUp(ctx, asha())
	require.ErrorIs(t, err, connectsdk.ErrUserAlreadyExists)
}

func TestSignUpRejectsBadInput(t *testing.T) {
	s := setupStack(t, stackOptions{})
	client := connectsdk.NewClient(s.BaseURL)

	req := asha()
	req.Regno = "not-a-regno"
	_, err := client.SignUp(t.Context(), req)
	require.ErrorIs(t, err, connectsdk.ErrInvalidCredentials)

	_, err = client.VerifySignUp(t.Context(), "forged", "0000000000")
	require.ErrorIs(t, err, connectsdk.ErrInvalidToken)
}

// TestSignUpRateLimit runs against production limits.
func TestSignUpRateLimit(t *testing.T) {
	s := setupStack(t, stackOptions{defaultRateLimits: true})
	client := connectsdk.NewClient(s.BaseURL)

	req := asha()
	req.Regno = "bad"

	var limited bool
	for range 20 {
		_, err := client.SignUp(t.Context(), req)
		var apiErr *connectsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		if apiErr.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	require.True(t, limited, "sign-up was never rate limited")
}
