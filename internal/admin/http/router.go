package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hirelane/staffdesk/internal/admin/metrics"
	"github.com/hirelane/staffdesk/internal/admin/payments"
	"github.com/hirelane/staffdesk/internal/admin/service"
	"github.com/hirelane/staffdesk/internal/admin/store"
	"github.com/hirelane/staffdesk/pkg/httpx"
	"github.com/hirelane/staffdesk/pkg/jwtx"
	"github.com/hirelane/staffdesk/pkg/slogx"

	_ "github.com/hirelane/staffdesk/api/admin" // Swagger docs
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	env          string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	Metrics          *metrics.Metrics
	ClientsService   *service.ClientsService
	ProfilesService  *service.ProfilesService
	AlertsService    *service.AlertsService
	CheckoutService  *service.CheckoutService
	Pricing          payments.PricingTable
	DashboardBaseURL string
}

func NewRouter(
	verifier jwtx.Verifier,
	env, buildVersion string,
	st store.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		env:          env,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		Metrics:      m,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		m.HTTPMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAdminClients()
	r.registerAdminAlerts()
	r.registerPayments()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Staffdesk Admin API
//	@version		0.1.0
//	@description	Back-office API for the staffing platform: client directory,
//	@description	admin alerting, and job posting payment configuration.
//
//	@contact.name				Hirelane Engineering
//	@contact.url				https://github.com/hirelane/staffdesk
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handleAdmin wraps h with the full admin chain. CORS sits outermost so
// browser preflights return before auth runs.
func (r *Router) handleAdmin(h http.Handler) http.Handler {
	return httpx.Chain(h,
		httpx.CORS,
		httpx.AuthnMiddleware(r.verifier),
		RequireAdmin(r.ProfilesService),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
}

// handleBrowser registers a CORS-wrapped handler for both the method
// pattern and its OPTIONS preflight.
func (r *Router) handleBrowser(method, path string, h http.Handler) {
	r.Mux.Handle(method+" "+path, h)
	r.Mux.Handle("OPTIONS "+path, h)
}

func (r *Router) registerAdminClients() {
	list := &ClientsHandler{ClientsService: r.ClientsService, Env: r.env}
	r.handleBrowser("GET", "/v1/admin/clients", r.handleAdmin(list))

	welcome := &WelcomeEmailHandler{ClientsService: r.ClientsService, Env: r.env}
	r.handleBrowser("POST", "/v1/admin/clients/{id}/welcome", r.handleAdmin(welcome))
}

func (r *Router) registerAdminAlerts() {
	h := &AlertTestHandler{
		AlertsService:    r.AlertsService,
		DashboardBaseURL: r.DashboardBaseURL,
		Env:              r.env,
	}
	r.handleBrowser("POST", "/v1/admin/alerts/test", r.handleAdmin(h))
}

func (r *Router) registerPayments() {
	pricing := &PricingHandler{Pricing: r.Pricing}
	r.handleBrowser("GET", "/v1/pricing",
		httpx.Chain(pricing,
			httpx.CORS,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	checkout := &CheckoutHandler{CheckoutService: r.CheckoutService, Env: r.env}
	r.handleBrowser("POST", "/v1/checkout/session",
		httpx.Chain(checkout,
			httpx.CORS,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.buildVersion, r.startTime),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
