package http

import (
	"net/http"

	"github.com/hirelane/staffdesk/internal/admin/service"
	"github.com/hirelane/staffdesk/pkg/httpx"
	"github.com/hirelane/staffdesk/pkg/slogx"
)

// RequireAdmin gates a route on the caller's profile carrying the admin
// role. Must run after AuthnMiddleware; a caller without an admin profile
// gets a 403.
func RequireAdmin(profiles *service.ProfilesService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			userID := httpx.UserIDFromContext(ctx)
			if userID == "" {
				httpx.WriteError(w, http.StatusUnauthorized, "Invalid authentication token")
				return
			}

			// A failed role lookup denies access rather than erroring;
			// the caller cannot distinguish the two cases.
			admin, err := profiles.IsAdmin(ctx, userID)
			if err != nil {
				log.Error("admin role lookup failed", "error", err, "user_id", userID)
				admin = false
			}
			if !admin {
				httpx.WriteError(w, http.StatusForbidden, "Unauthorized: Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
