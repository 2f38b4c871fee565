package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/connect/internal/connect/domain"
	"github.com/aussiebroadwan/connect/internal/connect/service"
	"github.com/aussiebroadwan/connect/pkg/connectsdk"
	"github.com/aussiebroadwan/connect/pkg/httpx"
	"github.com/aussiebroadwan/connect/pkg/slogx"
)

type PublicProfileHandler struct {
	ProfileService *service.ProfileService
}

// HandleGet godoc
//
//	@Summary		Get Public Profile
//	@Description	Returns the caller's public profile. An empty profile is created on first read.
//	@Tags			Profile
//	@Produce		json
//	@Security		UserToken
//	@Param			token	query		string						false	"User access token, if not sent as a header"
//	@Success		200		{object}	connectsdk.ProfileResponse	"status, message, profile"
//	@Failure		400		{object}	connectsdk.StatusResponse	"Invalid Credentials or Invalid Token"
//	@Failure		429		{object}	connectsdk.StatusResponse	"rate limited"
//	@Failure		500		{object}	connectsdk.StatusResponse	"Internal Server Error"
//	@Router			/profile/public [get].
func (h *PublicProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	who, ok := httpx.ClaimsFromContext[domain.SessionClaim](ctx)
	if !ok {
		httpx.WriteStatus(w, http.StatusBadRequest, connectsdk.MsgInvalidToken)
		return
	}

	p, err := h.ProfileService.GetPublicProfile(ctx, who)
	if err != nil {
		log.Error("get public profile failed", "op", "profile.get", "regno", who.Regno, "err", err)
		httpx.WriteStatus(w, http.StatusInternalServerError, connectsdk.MsgInternalServerError)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, connectsdk.ProfileResponse{
		Status:  true,
		Message: connectsdk.MsgReturningProfile,
		Profile: toSDKProfile(p),
	})
}

// HandleUpdate godoc
//
//	@Summary		Update Public Profile
//	@Description	Partially updates the caller's public profile. Omitted or empty fields are left unchanged.
//	@Description	joiningYear may be sent as a number or a numeric string.
//	@Tags			Profile
//	@Accept			json
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		connectsdk.UpdateProfileRequest	true	"token plus any of profilePhotoUrl, branch, joiningYear"
//	@Success		200		{object}	connectsdk.StatusResponse		"Profile Updated"
//	@Failure		400		{object}	connectsdk.StatusResponse		"Invalid Credentials, Invalid Token or Invalid Profile Details"
//	@Failure		429		{object}	connectsdk.StatusResponse		"rate limited"
//	@Failure		500		{object}	connectsdk.StatusResponse		"Internal Server Error"
//	@Router			/profile/public [post].
func (h *PublicProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	who, ok := httpx.ClaimsFromContext[domain.SessionClaim](ctx)
	if !ok {
		httpx.WriteStatus(w, http.StatusBadRequest, connectsdk.MsgInvalidToken)
		return
	}

	var body updateProfileBody
	if err := httpx.DecodeBody(r, &body); err != nil {
		log.Debug("profile update: bad body", "err", err)
		httpx.WriteStatus(w, http.StatusBadRequest, connectsdk.MsgInvalidProfile)
		return
	}

	err := h.ProfileService.UpdatePublicProfile(ctx, who, domain.ProfileUpdate{
		ProfilePhotoURL: body.ProfilePhotoURL,
		Branch:          body.Branch,
		JoiningYear:     body.JoiningYear.value,
	})
	if err != nil {
		log.Error("update public profile failed", "op", "profile.update", "regno", who.Regno, "err", err)
		httpx.WriteStatus(w, http.StatusInternalServerError, connectsdk.MsgInternalServerError)
		return
	}

	httpx.WriteStatus(w, http.StatusOK, connectsdk.MsgProfileUpdated)
}

// updateProfileBody mirrors connectsdk.UpdateProfileRequest but tolerates
// the string-typed joiningYear that form posts produce.
type updateProfileBody struct {
	ProfilePhotoURL *string     `json:"profilePhotoUrl"`
	Branch          *string     `json:"branch"`
	JoiningYear     joiningYear `json:"joiningYear"`
}

// joiningYear accepts a JSON number or a numeric string. null and "" leave
// it unset.
type joiningYear struct {
	value *int
}

func (y *joiningYear) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("joiningYear: %w", err)
	}
	y.value = &n
	return nil
}

func toSDKProfile(p domain.PublicProfile) *connectsdk.Profile {
	return &connectsdk.Profile{
		Firstname:       p.Firstname,
		Lastname:        p.Lastname,
		Regno:           p.Regno,
		ProfilePhotoURL: p.ProfilePhotoURL,
		Branch:          p.Branch,
		JoiningYear:     p.JoiningYear,
	}
}
