package connectsdk

import (
	"context"
	"net/http"
)

// SignUp starts a registration. The server mails an OTP to the student's
// institutional address and returns the sign-up access token.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/sign-up", req, nil)
	if err != nil {
		return nil, err
	}

	var out SignUpResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifySignUp completes a registration with the mailed OTP and returns a
// Session for the new account.
func (c *Client) VerifySignUp(ctx context.Context, signUpToken, otp string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/sign-up/verify", VerifySignUpRequest{
		Token: signUpToken,
		OTP:   otp,
	}, nil)
	if err != nil {
		return nil, err
	}

	var out VerifySignUpResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return c.NewSession(out.UserAccessToken), nil
}
