package http

import (
	"net/http"

	"github.com/hirelane/staffdesk/internal/admin/store"
	"github.com/hirelane/staffdesk/pkg/httpx"
	"github.com/hirelane/staffdesk/pkg/staffsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks database connectivity; a failed check returns 503.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	staffsdk.HealthResponse	"status, checks"
//	@Failure		503	{object}	staffsdk.HealthResponse	"status, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &staffsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, staffsdk.HealthResponse{
			Status: status,
			Checks: checks,
		})
	}
}
