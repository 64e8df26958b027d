package http

import (
	"net/http"

	"github.com/hirelane/staffdesk/internal/admin/domain"
	"github.com/hirelane/staffdesk/internal/admin/service"
	"github.com/hirelane/staffdesk/pkg/httpx"
	"github.com/hirelane/staffdesk/pkg/slogx"
	"github.com/hirelane/staffdesk/pkg/staffsdk"
)

type ClientsHandler struct {
	ClientsService *service.ClientsService
	Env            string
}

// ServeHTTP handles the admin client directory endpoint
//
//	@Summary		List clients with account status
//	@Description	Returns every client joined with its client-role account profile, newest first. Requires an admin profile.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	staffsdk.ListClientsResponse	"Client directory"
//	@Failure		401	{object}	staffsdk.ErrorResponse			"Missing or invalid token"
//	@Failure		403	{object}	staffsdk.ErrorResponse			"Caller is not an admin"
//	@Failure		500	{object}	staffsdk.ErrorResponse			"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/admin/clients [get].
func (h *ClientsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	entries, err := h.ClientsService.ListWithStatus(ctx)
	if err != nil {
		log.Error("failed to list client directory", "error", err)
		writeServerError(w, h.Env, "Internal server error", err)
		return
	}

	response := staffsdk.ListClientsResponse{
		Success: true,
		Clients: make([]staffsdk.ClientEntry, len(entries)),
	}
	for i, entry := range entries {
		response.Clients[i] = toClientEntry(entry)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

func toClientEntry(e domain.ClientWithStatus) staffsdk.ClientEntry {
	return staffsdk.ClientEntry{
		ID:               e.ID,
		UserID:           e.UserID,
		CompanyName:      e.CompanyName,
		ContactPhone:     e.ContactPhone,
		Address:          e.Address,
		Street1:          e.Street1,
		Street2:          e.Street2,
		City:             e.City,
		State:            e.State,
		Zip:              e.Zip,
		WelcomeEmailSent: e.WelcomeEmailSent,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
		Profiles: &staffsdk.ProfileInfo{
			UserID:   e.Profile.UserID,
			Email:    e.Profile.Email,
			FullName: e.Profile.FullName,
			Role:     string(e.Profile.Role),
			IsActive: e.Profile.IsActive,
		},
		InvitationStatus: e.InvitationStatus,
		EmailConfirmedAt: e.EmailConfirmedAt,
	}
}
