package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hirelane/staffdesk/internal/admin/payments"
	"github.com/hirelane/staffdesk/internal/admin/service"
	"github.com/hirelane/staffdesk/pkg/httpx"
	"github.com/hirelane/staffdesk/pkg/slogx"
	"github.com/hirelane/staffdesk/pkg/staffsdk"
)

type CheckoutHandler struct {
	CheckoutService *service.CheckoutService
	Env             string
}

// ServeHTTP handles checkout session creation
//
//	@Summary		Create a job posting checkout session
//	@Description	Creates a hosted checkout session for the selected classification and returns the redirect URL.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		staffsdk.CheckoutSessionRequest		true	"Classification and redirect URLs"
//	@Success		200		{object}	staffsdk.CheckoutSessionResponse	"Session created"
//	@Failure		400		{object}	staffsdk.ErrorResponse				"Unknown classification or bad body"
//	@Failure		401		{object}	staffsdk.ErrorResponse				"Missing or invalid token"
//	@Failure		502		{object}	staffsdk.ErrorResponse				"Payment provider unavailable"
//	@Security		BearerAuth
//	@Router			/v1/checkout/session [post].
func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req staffsdk.CheckoutSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SuccessURL == "" || req.CancelURL == "" {
		httpx.WriteError(w, http.StatusBadRequest, "successUrl and cancelUrl are required")
		return
	}

	sess, err := h.CheckoutService.CreateSession(ctx,
		payments.JobClassification(req.Classification), req.SuccessURL, req.CancelURL)
	if err != nil {
		if errors.Is(err, service.ErrUnknownClassification) {
			httpx.WriteError(w, http.StatusBadRequest, "Unknown job classification")
			return
		}
		log.Error("failed to create checkout session", "error", err, "classification", req.Classification)
		httpx.WriteError(w, http.StatusBadGateway, "Payment provider unavailable")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, staffsdk.CheckoutSessionResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
	})
}
