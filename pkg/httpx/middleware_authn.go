package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/murmurapp/murmur/pkg/jwtx"
	"github.com/murmurapp/murmur/pkg/slogx"
)

// AuthnMiddleware verifies the bearer token and injects the authenticated
// principal (user ID, username) into the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeUnauthenticated(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeUnauthenticated(w, "token verification failed")
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeUnauthenticated(w, "token expired")
				return
			}

			ctx = contextWithPrincipal(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithPrincipal(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyUsername, c.Username)
	return ctx
}

func writeUnauthenticated(w http.ResponseWriter, desc string) {
	// RFC 6750 header plus the service's uniform error envelope.
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]any{
		"success": false,
		"message": "Unauthenticated",
	})
}
