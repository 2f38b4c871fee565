package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/connect/internal/connect/domain"
	"github.com/aussiebroadwan/connect/internal/connect/service"
	"github.com/aussiebroadwan/connect/pkg/connectsdk"
	"github.com/aussiebroadwan/connect/pkg/httpx"
	"github.com/aussiebroadwan/connect/pkg/slogx"
)

// SignUpVerifyHandler expects the registration claim to have been placed
// in the context by the token middleware.
type SignUpVerifyHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		Verify Sign Up Endpoint
//	@Description	Completes a registration with the mailed one-time code and returns a user access token.
//	@Description	Repeating a successful verify with the same token answers "User already registered".
//	@Tags			Auth
//	@Accept			json
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		connectsdk.VerifySignUpRequest	true	"token (sign-up access token), otp"
//	@Success		200		{object}	connectsdk.VerifySignUpResponse	"status, message, useraccesstoken"
//	@Failure		400		{object}	connectsdk.StatusResponse		"Invalid Credentials, Invalid Token, Invalid signUpAccessToken, Incorrect OTP or User already registered"
//	@Failure		429		{object}	connectsdk.StatusResponse		"rate limited"
//	@Failure		500		{object}	connectsdk.StatusResponse		"Internal Server Error"
//	@Router			/auth/sign-up/verify [post].
func (h *SignUpVerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	claim, ok := httpx.ClaimsFromContext[domain.RegistrationClaim](ctx)
	if !ok {
		httpx.WriteStatus(w, http.StatusBadRequest, connectsdk.MsgInvalidToken)
		return
	}

	var req connectsdk.VerifySignUpRequest
	if err := httpx.DecodeBody(r, &req); err != nil {
		log.Debug("sign-up verify: bad body", "err", err)
		httpx.WriteStatus(w, http.StatusBadRequest, connectsdk.MsgInvalidCredentials)
		return
	}

	userToken, err := h.RegistrationService.VerifySignUp(ctx, claim, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteStatus(w, http.StatusBadRequest, connectsdk.MsgInvalidCredentials)
		case errors.Is(err, service.ErrInvalidSignUpToken):
			log.Debug("sign-up verify: sealed otp rejected", "err", err)
			httpx.WriteStatus(w, http.StatusBadRequest, connectsdk.MsgInvalidSignUpToken)
		case errors.Is(err, service.ErrIncorrectOTP):
			log.Warn("sign-up verify: incorrect otp", "regno", claim.Regno)
			httpx.WriteStatus(w, http.StatusBadRequest, connectsdk.MsgIncorrectOTP)
		case errors.Is(err, service.ErrUserAlreadyRegistered):
			httpx.WriteStatus(w, http.StatusBadRequest, connectsdk.MsgUserAlreadyExists)
		default:
			log.Error("sign-up verify failed", "op", "auth.sign_up_verify", "err", err)
			httpx.WriteStatus(w, http.StatusInternalServerError, connectsdk.MsgInternalServerError)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, connectsdk.VerifySignUpResponse{
		Status:          true,
		Message:         connectsdk.MsgUserAccountCreated,
		UserAccessToken: userToken,
	})
}
