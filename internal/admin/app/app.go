package app

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/hirelane/staffdesk/internal/admin/http"
	"github.com/hirelane/staffdesk/internal/admin/mailer"
	"github.com/hirelane/staffdesk/internal/admin/metrics"
	"github.com/hirelane/staffdesk/internal/admin/payments"
	"github.com/hirelane/staffdesk/internal/admin/service"
	"github.com/hirelane/staffdesk/internal/admin/store"
	"github.com/hirelane/staffdesk/internal/admin/store/drivers/sqlite"
	"github.com/hirelane/staffdesk/pkg/jwtx"
	"github.com/hirelane/staffdesk/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the admin service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	verifier jwtx.Verifier
	mail     mailer.Mailer
	provider *payments.Provider
	pricing  payments.PricingTable
	metrics  *metrics.Metrics

	// Services
	clientsService  *service.ClientsService
	profilesService *service.ProfilesService
	alertsService   *service.AlertsService
	checkoutService *service.CheckoutService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "admin-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	verifier, err := newVerifier(cfg)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.verifier = verifier

	app.mail = mailer.New(cfg.ResendAPIKey, cfg.AlertFromAddress, app.logger)

	// The provider is built once at startup; its API client is created
	// lazily on first use.
	app.provider = payments.NewProvider(cfg.StripeSecretKey)
	app.pricing = payments.NewPricingTable(cfg.StripeStandardPriceID, cfg.StripePremiumPriceID)
	app.metrics = metrics.New(prometheus.DefaultRegisterer)

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("admin service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down admin service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("admin service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// newVerifier builds the token verifier for the configured algorithm. The
// auth provider signs; this service only verifies.
func newVerifier(cfg Config) (jwtx.Verifier, error) {
	switch cfg.JWTAlgorithm {
	case "HS256":
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("AUTH_JWT_SECRET is required for HS256")
		}
		return jwtx.NewVerifierHS256([]byte(cfg.JWTSecret), cfg.Issuer), nil

	case "EdDSA":
		raw, err := base64.StdEncoding.DecodeString(cfg.JWTPublicKey)
		if err != nil {
			return nil, fmt.Errorf("decode AUTH_JWT_PUBLIC_KEY: %w", err)
		}
		if len(raw) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("AUTH_JWT_PUBLIC_KEY must be a %d-byte Ed25519 key", ed25519.PublicKeySize)
		}
		return jwtx.NewVerifierEdDSA(ed25519.PublicKey(raw), cfg.Issuer), nil

	default:
		return nil, fmt.Errorf("unsupported JWT algorithm %q", cfg.JWTAlgorithm)
	}
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.clientsService = &service.ClientsService{
		Store:   app.db,
		Mailer:  app.mail,
		Metrics: app.metrics,
	}
	app.profilesService = &service.ProfilesService{Store: app.db}
	app.alertsService = &service.AlertsService{
		Store:   app.db,
		Mailer:  app.mail,
		Metrics: app.metrics,
	}
	app.checkoutService = &service.CheckoutService{
		Pricing:  app.pricing,
		Provider: app.provider,
		Metrics:  app.metrics,
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		app.cfg.Env,
		BuildVersion,
		app.db,
		app.metrics,
		app.logger,
	)

	// Wire services to router
	router.ClientsService = app.clientsService
	router.ProfilesService = app.profilesService
	router.AlertsService = app.alertsService
	router.CheckoutService = app.checkoutService
	router.Pricing = app.pricing
	router.DashboardBaseURL = app.cfg.DashboardBaseURL
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
