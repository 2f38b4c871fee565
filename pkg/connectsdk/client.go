package connectsdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to a Connect++ server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a Client for baseURL with a 10 second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session performs calls on behalf of a verified user.
type Session struct {
	client *Client
	token  string
}

// NewSession wraps an existing user access token.
func (c *Client) NewSession(userAccessToken string) *Session {
	return &Session{client: c, token: userAccessToken}
}

// Token returns the user access token of the session.
func (s *Session) Token() string { return s.token }
