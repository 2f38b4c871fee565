package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/connect/pkg/slogx"
)

// Messages written by TokenMiddleware.
const (
	MsgInvalidCredentials = "Invalid Credentials"
	MsgInvalidToken       = "Invalid Token"
)

// TokenExtractor pulls the raw token out of a request. An empty string
// means the request carries no token.
type TokenExtractor func(*http.Request) string

// HeaderTokenExtractor reads the token for read requests: Authorization
// bearer first, then the "token" header, then the "token" query parameter.
func HeaderTokenExtractor(r *http.Request) string {
	if scheme, tok, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " "); ok && strings.EqualFold(scheme, "Bearer") {
		if tok = strings.TrimSpace(tok); tok != "" {
			return tok
		}
	}
	if tok := strings.TrimSpace(r.Header.Get("token")); tok != "" {
		return tok
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}

// BodyTokenExtractor reads field from a JSON or url-encoded body. The body
// is restored so the handler can decode it again.
func BodyTokenExtractor(field string) TokenExtractor {
	return func(r *http.Request) string {
		if r.Body == nil {
			return ""
		}

		raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(raw))
		if err != nil || len(raw) == 0 {
			return ""
		}

		if IsFormEncoded(r) {
			values, err := url.ParseQuery(string(raw))
			if err != nil {
				return ""
			}
			return strings.TrimSpace(values.Get(field))
		}

		var body map[string]json.RawMessage
		if err := json.Unmarshal(raw, &body); err != nil {
			return ""
		}
		var tok string
		if err := json.Unmarshal(body[field], &tok); err != nil {
			return ""
		}
		return strings.TrimSpace(tok)
	}
}

// TokenMiddleware gates a handler on a verified token. extract finds the
// raw token, verify decodes it into T. On success the claim is stored in
// the request context (see ClaimsFromContext). If T has a Subject method
// its value is also stored as the user id for per-user rate limiting.
func TokenMiddleware[T any](verify func(ctx context.Context, token string) (T, error), extract TokenExtractor) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := extract(r)
			if raw == "" {
				WriteStatus(w, http.StatusBadRequest, MsgInvalidCredentials)
				return
			}

			claims, err := verify(ctx, raw)
			if err != nil {
				log.Debug("token rejected", "err", err)
				WriteStatus(w, http.StatusBadRequest, MsgInvalidToken)
				return
			}

			ctx = WithClaims(ctx, claims)
			if s, ok := any(claims).(interface{ Subject() string }); ok {
				ctx = context.WithValue(ctx, CtxKeyUserID, s.Subject())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
