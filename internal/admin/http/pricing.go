package http

import (
	"net/http"

	"github.com/hirelane/staffdesk/internal/admin/payments"
	"github.com/hirelane/staffdesk/pkg/httpx"
	"github.com/hirelane/staffdesk/pkg/staffsdk"
)

type PricingHandler struct {
	Pricing payments.PricingTable
}

// ServeHTTP handles the public pricing endpoint
//
//	@Summary		Job posting pricing
//	@Description	Returns the pricing tier for each job classification. Prices are in cents.
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{object}	staffsdk.PricingResponse	"Pricing tiers"
//	@Router			/v1/pricing [get].
func (h *PricingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := staffsdk.PricingResponse{
		Tiers: make(map[string]staffsdk.PricingTier, len(h.Pricing)),
	}
	for classification, tier := range h.Pricing {
		response.Tiers[string(classification)] = staffsdk.PricingTier{
			Price:       tier.Price,
			Label:       tier.Label,
			Description: tier.Description,
			PriceID:     tier.PriceID,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
