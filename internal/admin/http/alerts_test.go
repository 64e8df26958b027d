package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hirelane/staffdesk/internal/admin/domain"
	"github.com/hirelane/staffdesk/pkg/staffsdk"
	"github.com/stretchr/testify/require"
)

func (f *routerFixture) postAlert(t *testing.T, srv *httptest.Server, token, alertType string) *http.Response {
	t.Helper()

	raw, err := json.Marshal(staffsdk.TestAlertRequest{AlertType: alertType})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/v1/admin/alerts/test", bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestTestAlertDispatchesToAdmins(t *testing.T) {
	f := newTestRouter(t)
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	f.seedProfile(t, "admin-1", "ops1@example.com", domain.RoleAdmin)
	f.seedProfile(t, "admin-2", "ops2@example.com", domain.RoleAdmin)

	resp := f.postAlert(t, srv, f.token(t, "admin-1", "ops1@example.com"), "client_registered")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body staffsdk.TestAlertResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.EmailsSent)
	require.Equal(t, 2, body.SuccessCount)
	require.Equal(t, 0, body.FailureCount)
	require.Len(t, f.mailer.sent, 2)
}

func TestTestAlertRejectsUnknownType(t *testing.T) {
	f := newTestRouter(t)
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	f.seedProfile(t, "admin-1", "ops1@example.com", domain.RoleAdmin)

	resp := f.postAlert(t, srv, f.token(t, "admin-1", "ops1@example.com"), "bogus")
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body staffsdk.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Unknown alert type", body.Error)
}

func TestTestAlertRequiresAdmin(t *testing.T) {
	f := newTestRouter(t)
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	f.seedProfile(t, "user-1", "client@example.com", domain.RoleClient)

	resp := f.postAlert(t, srv, f.token(t, "user-1", "client@example.com"), "client_registered")
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.postAlert(t, srv, "", "client_registered")
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPricingEndpointIsPublic(t *testing.T) {
	f := newTestRouter(t)
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/pricing")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body staffsdk.PricingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.EqualValues(t, 500, body.Tiers["STANDARD"].Price)
	require.EqualValues(t, 1500, body.Tiers["PREMIUM"].Price)
}
