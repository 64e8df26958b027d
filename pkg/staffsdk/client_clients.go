package staffsdk

import (
	"context"
	"net/http"
)

// ListClients fetches the admin client directory.
func (c *SDKClient) ListClients(ctx context.Context) (*ListClientsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/admin/clients", nil)
	if err != nil {
		return nil, err
	}

	var result ListClientsResponse
	if err := decodeJSON(resp, &result, http.StatusOK); err != nil {
		return nil, err
	}

	return &result, nil
}

// SendWelcomeEmail triggers the welcome email for a client.
func (c *SDKClient) SendWelcomeEmail(ctx context.Context, clientID string) (*WelcomeEmailResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/admin/clients/"+clientID+"/welcome", nil)
	if err != nil {
		return nil, err
	}

	var result WelcomeEmailResponse
	if err := decodeJSON(resp, &result, http.StatusOK); err != nil {
		return nil, err
	}

	return &result, nil
}
