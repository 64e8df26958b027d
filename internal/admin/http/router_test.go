package http

import (
	"context"
	"testing"
	"time"

	"github.com/hirelane/staffdesk/internal/admin/domain"
	"github.com/hirelane/staffdesk/internal/admin/mailer"
	"github.com/hirelane/staffdesk/internal/admin/metrics"
	"github.com/hirelane/staffdesk/internal/admin/payments"
	"github.com/hirelane/staffdesk/internal/admin/service"
	"github.com/hirelane/staffdesk/internal/admin/store"
	"github.com/hirelane/staffdesk/internal/admin/store/drivers/sqlite"
	"github.com/hirelane/staffdesk/pkg/idx"
	"github.com/hirelane/staffdesk/pkg/jwtx"
	"github.com/hirelane/staffdesk/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "staffdesk-auth"
	testSecret = "router-test-secret"
)

type routerFixture struct {
	router *Router
	store  store.Store
	mailer *captureMailer
	signer jwtx.Signer
}

func newTestRouter(t *testing.T) *routerFixture {
	t.Helper()

	st, err := sqlite.NewStore("file:http_" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	m := metrics.New(prometheus.NewRegistry())
	mail := &captureMailer{configured: true}
	logger := slogx.New(slogx.Config{Service: "admin-test", Env: "test", Level: "error", Format: "text"})

	r := NewRouter(jwtx.NewVerifierHS256([]byte(testSecret), testIssuer), "test", "v0.0.0", st, m, logger)
	r.ClientsService = &service.ClientsService{Store: st, Mailer: mail, Metrics: m}
	r.ProfilesService = &service.ProfilesService{Store: st}
	r.AlertsService = &service.AlertsService{Store: st, Mailer: mail, Metrics: m}
	r.Pricing = payments.NewPricingTable("price_std_test", "price_prem_test")
	r.DashboardBaseURL = "https://app.example.com"
	r.ApplyRoutes()

	return &routerFixture{
		router: r,
		store:  st,
		mailer: mail,
		signer: jwtx.NewSignerHS256([]byte(testSecret)),
	}
}

// token mints a bearer token for the given subject.
func (f *routerFixture) token(t *testing.T, userID, email string) string {
	t.Helper()
	raw, err := f.signer.Sign(jwtx.NewAccessClaims(userID, testIssuer, email, time.Hour, time.Now()))
	require.NoError(t, err)
	return raw
}

func (f *routerFixture) seedProfile(t *testing.T, userID, email string, role domain.Role) {
	t.Helper()
	require.NoError(t, f.store.Profiles().CreateProfile(context.Background(), domain.Profile{
		UserID:   userID,
		Email:    email,
		FullName: "Person " + userID,
		Role:     role,
		IsActive: true,
	}))
}

func (f *routerFixture) seedClient(t *testing.T, userID *string, company string) string {
	t.Helper()
	id := idx.New().String()
	require.NoError(t, f.store.Clients().CreateClient(context.Background(), domain.Client{
		ID:          id,
		UserID:      userID,
		CompanyName: company,
	}))
	return id
}

type captureMailer struct {
	configured bool
	sent       []mailer.Message
}

func (m *captureMailer) Configured() bool { return m.configured }

func (m *captureMailer) Send(ctx context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}
