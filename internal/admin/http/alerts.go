package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/hirelane/staffdesk/internal/admin/domain"
	"github.com/hirelane/staffdesk/internal/admin/service"
	"github.com/hirelane/staffdesk/pkg/httpx"
	"github.com/hirelane/staffdesk/pkg/slogx"
	"github.com/hirelane/staffdesk/pkg/staffsdk"
)

type AlertTestHandler struct {
	AlertsService    *service.AlertsService
	DashboardBaseURL string
	Env              string
}

// ServeHTTP handles the test alert trigger
//
//	@Summary		Send a test admin alert
//	@Description	Dispatches the selected alert template with synthetic data to every active admin and reports per-recipient counts.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		staffsdk.TestAlertRequest	true	"Alert type to exercise"
//	@Success		200		{object}	staffsdk.TestAlertResponse	"Dispatch outcome"
//	@Failure		400		{object}	staffsdk.ErrorResponse		"Unknown alert type"
//	@Failure		401		{object}	staffsdk.ErrorResponse		"Missing or invalid token"
//	@Failure		403		{object}	staffsdk.ErrorResponse		"Caller is not an admin"
//	@Failure		500		{object}	staffsdk.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/admin/alerts/test [post].
func (h *AlertTestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req staffsdk.TestAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	alertType := domain.AlertType(req.AlertType)
	if !alertType.Valid() {
		httpx.WriteError(w, http.StatusBadRequest, "Unknown alert type")
		return
	}

	payload := service.NewTestPayload(alertType, r.Header.Get("Origin"), h.DashboardBaseURL, time.Now())

	result, err := h.AlertsService.Dispatch(ctx, payload)
	if err != nil {
		if errors.Is(err, service.ErrUnknownAlertType) {
			httpx.WriteError(w, http.StatusBadRequest, "Unknown alert type")
			return
		}
		log.Error("failed to dispatch test alert", "error", err, "alert_type", alertType)
		writeServerError(w, h.Env, "Internal server error", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, staffsdk.TestAlertResponse{
		Message:      result.Message,
		EmailsSent:   result.EmailsSent,
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
	})
}
