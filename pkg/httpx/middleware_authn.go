package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/hirelane/staffdesk/pkg/jwtx"
	"github.com/hirelane/staffdesk/pkg/slogx"
)

// AuthnMiddleware resolves the bearer token to an authenticated user via
// the verifier. A missing header and an invalid token are distinct 401s;
// both are terminal for the request.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" {
				WriteError(w, http.StatusUnauthorized, "Missing authorization header")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				WriteError(w, http.StatusUnauthorized, "Invalid authentication token")
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				WriteError(w, http.StatusUnauthorized, "Invalid authentication token")
				return
			}

			if claims.Subject == "" {
				WriteError(w, http.StatusUnauthorized, "Invalid authentication token")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithAuth(ctx, claims)))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyEmail, c.Email)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
