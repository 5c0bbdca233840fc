package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID carries the authenticated principal's user ID. Every
	// owner-scoped handler reads its identity from here rather than from
	// any session abstraction.
	CtxKeyUserID ctxKey = "user_id"

	// CtxKeyUsername carries the authenticated principal's username.
	CtxKeyUsername ctxKey = "username"
)

// UserIDFromContext returns the authenticated user ID, or "" when the
// request is unauthenticated.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
