package connectsdk

import (
	"context"
	"net/http"
)

// GetPublicProfile returns the caller's public profile, creating an empty
// one on first read.
func (s *Session) GetPublicProfile(ctx context.Context) (*Profile, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/profile/public", nil, map[string]string{
		"Authorization": "Bearer " + s.token,
	})
	if err != nil {
		return nil, err
	}

	var out ProfileResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	if out.Profile == nil {
		return &Profile{}, nil
	}
	return out.Profile, nil
}

// UpdatePublicProfile applies a partial update. req.Token is overwritten
// with the session token.
func (s *Session) UpdatePublicProfile(ctx context.Context, req UpdateProfileRequest) error {
	req.Token = s.token

	resp, err := s.client.doRequest(ctx, http.MethodPost, "/profile/public", req, nil)
	if err != nil {
		return err
	}

	var out StatusResponse
	return decodeJSON(resp, &out)
}
