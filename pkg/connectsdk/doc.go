/*
Package connectsdk is a Go client for the Connect++ HTTP API.

# Client vs Session

Client covers the unauthenticated calls: the two sign-up steps and the
health probes. Finishing a sign-up yields a Session, which carries the user
access token and performs the profile calls.

	client := connectsdk.NewClient("http://localhost:4000")

	signUp, err := client.SignUp(ctx, connectsdk.SignUpRequest{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Regno:     "21BCE1111",
		Password:  "hunter2hunter2",
	})

	// The OTP arrives by mail.
	session, err := client.VerifySignUp(ctx, signUp.Token, otp)

	profile, err := session.GetPublicProfile(ctx)

A Session for an already issued token can be built with NewSession.

# Errors

Every non-2xx response is returned as an *APIError carrying the HTTP
status and the envelope message. Compare messages with the Msg constants
or use errors.Is against the predefined errors:

	if errors.Is(err, connectsdk.ErrIncorrectOTP) {
		// ask again
	}
*/
package connectsdk
