package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/connect/internal/connect/service"
	"github.com/aussiebroadwan/connect/pkg/connectsdk"
	"github.com/aussiebroadwan/connect/pkg/httpx"
	"github.com/aussiebroadwan/connect/pkg/slogx"
)

type SignUpHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		Sign Up Endpoint
//	@Description	Starts a registration. A one-time code is mailed to the student's institutional address
//	@Description	and a sign-up access token is returned; both are needed by /auth/sign-up/verify.
//	@Tags			Auth
//	@Accept			json
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		connectsdk.SignUpRequest	true	"firstname, lastname, regno, password"
//	@Success		200		{object}	connectsdk.SignUpResponse	"status, message, token"
//	@Failure		400		{object}	connectsdk.StatusResponse	"Invalid Credentials or User already registered"
//	@Failure		429		{object}	connectsdk.StatusResponse	"rate limited"
//	@Failure		500		{object}	connectsdk.StatusResponse	"Internal Server Error"
//	@Router			/auth/sign-up [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req connectsdk.SignUpRequest
	if err := httpx.DecodeBody(r, &req); err != nil {
		log.Debug("sign-up: bad body", "err", err)
		httpx.WriteStatus(w, http.StatusBadRequest, connectsdk.MsgInvalidCredentials)
		return
	}

	token, err := h.RegistrationService.SignUp(ctx, service.SignUpRequest{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Regno:     req.Regno,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteStatus(w, http.StatusBadRequest, connectsdk.MsgInvalidCredentials)
		case errors.Is(err, service.ErrUserAlreadyRegistered):
			httpx.WriteStatus(w, http.StatusBadRequest, connectsdk.MsgUserAlreadyExists)
		default:
			log.Error("sign-up failed", "op", "auth.sign_up", "err", err)
			httpx.WriteStatus(w, http.StatusInternalServerError, connectsdk.MsgInternalServerError)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, connectsdk.SignUpResponse{
		Status:  true,
		Message: connectsdk.MsgOTPSent,
		Token:   token,
	})
}
