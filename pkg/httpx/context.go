package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyClaims ctxKey = "claims"
)

// WithClaims stores a verified claim on ctx.
func WithClaims[T any](ctx context.Context, claims T) context.Context {
	return context.WithValue(ctx, CtxKeyClaims, claims)
}

// ClaimsFromContext returns the claim stored by TokenMiddleware. ok is false
// when no claim of type T is present.
func ClaimsFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(CtxKeyClaims).(T)
	return v, ok
}

// UserIDFromContext returns the subject of the verified caller, if any.
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return id
	}
	return ""
}
