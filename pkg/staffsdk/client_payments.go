package staffsdk

import (
	"context"
	"net/http"
)

// GetPricing fetches the job posting pricing configuration.
func (c *SDKClient) GetPricing(ctx context.Context) (*PricingResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/pricing", nil)
	if err != nil {
		return nil, err
	}

	var result PricingResponse
	if err := decodeJSON(resp, &result, http.StatusOK); err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateCheckoutSession creates a hosted checkout session for a job
// posting fee and returns the redirect URL.
func (c *SDKClient) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSessionResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/checkout/session", req)
	if err != nil {
		return nil, err
	}

	var result CheckoutSessionResponse
	if err := decodeJSON(resp, &result, http.StatusOK); err != nil {
		return nil, err
	}

	return &result, nil
}
