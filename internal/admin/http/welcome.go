package http

import (
	"errors"
	"net/http"

	"github.com/hirelane/staffdesk/internal/admin/service"
	"github.com/hirelane/staffdesk/pkg/httpx"
	"github.com/hirelane/staffdesk/pkg/slogx"
	"github.com/hirelane/staffdesk/pkg/staffsdk"
)

type WelcomeEmailHandler struct {
	ClientsService *service.ClientsService
	Env            string
}

// ServeHTTP handles the welcome email trigger
//
//	@Summary		Send a client's welcome email
//	@Description	Sends the onboarding email to the client's linked account and marks it sent. A second send is rejected.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string							true	"Client ID"
//	@Success		200	{object}	staffsdk.WelcomeEmailResponse	"Email sent"
//	@Failure		404	{object}	staffsdk.ErrorResponse			"Client not found"
//	@Failure		409	{object}	staffsdk.ErrorResponse			"Already sent"
//	@Failure		422	{object}	staffsdk.ErrorResponse			"Client has no linked account"
//	@Failure		500	{object}	staffsdk.ErrorResponse			"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/admin/clients/{id}/welcome [post].
func (h *WelcomeEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clientID := r.PathValue("id")
	if clientID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Missing client id")
		return
	}

	err := h.ClientsService.SendWelcomeEmail(ctx, clientID)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, staffsdk.WelcomeEmailResponse{
			Success: true,
			Message: "Welcome email sent",
		})
	case errors.Is(err, service.ErrClientNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Client not found")
	case errors.Is(err, service.ErrWelcomeAlreadySent):
		httpx.WriteError(w, http.StatusConflict, "Welcome email already sent")
	case errors.Is(err, service.ErrClientUnlinked):
		httpx.WriteError(w, http.StatusUnprocessableEntity, "Client has no linked account")
	default:
		log.Error("failed to send welcome email", "error", err, "client_id", clientID)
		writeServerError(w, h.Env, "Internal server error", err)
	}
}
