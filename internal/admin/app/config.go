package app

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Required: expected issuer claim on access tokens

	JWTAlgorithm string // Optional: token verification algorithm (HS256, EdDSA) (default: HS256)
	JWTSecret    string // Required for HS256: shared signing secret
	JWTPublicKey string // Required for EdDSA: base64-encoded Ed25519 public key

	DatabaseFile string // Optional: path to SQLite database file (default: ./admin.db)

	StripeSecretKey       string // Optional: payment provider API key; checkout disabled when empty
	StripeStandardPriceID string // Price ID backing the STANDARD tier
	StripePremiumPriceID  string // Price ID backing the PREMIUM tier

	ResendAPIKey     string // Optional: email provider API key; alerts log-only when empty
	AlertFromAddress string // From address on alert and welcome emails
	DashboardBaseURL string // Fallback dashboard origin for alert links

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:       getEnvOrDefault("AUTH_ISSUER", "staffdesk-auth"),
		JWTAlgorithm: getEnvOrDefault("AUTH_JWT_ALGORITHM", "HS256"),
		JWTSecret:    os.Getenv("AUTH_JWT_SECRET"),
		JWTPublicKey: os.Getenv("AUTH_JWT_PUBLIC_KEY"),

		DatabaseFile: getEnvOrDefault("ADMIN_DATABASE_FILE", "admin.db"),

		StripeSecretKey:       os.Getenv("STRIPE_SECRET_KEY"),
		StripeStandardPriceID: os.Getenv("STRIPE_STANDARD_PRICE_ID"),
		StripePremiumPriceID:  os.Getenv("STRIPE_PREMIUM_PRICE_ID"),

		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		AlertFromAddress: getEnvOrDefault("ALERT_FROM_ADDRESS", "alerts@staffdesk.example"),
		DashboardBaseURL: getEnvOrDefault("DASHBOARD_BASE_URL", "https://app.staffdesk.example"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	// Price IDs only default in dev; elsewhere Validate requires them.
	if cfg.isDev() {
		if cfg.StripeStandardPriceID == "" {
			cfg.StripeStandardPriceID = "price_standard_dev"
		}
		if cfg.StripePremiumPriceID == "" {
			cfg.StripePremiumPriceID = "price_premium_dev"
		}
	}

	return cfg
}

func (c Config) isDev() bool {
	return c.Env == "dev" || c.Env == "development"
}

// Validate checks settings that must be explicit outside dev.
func (c Config) Validate() error {
	if c.isDev() {
		return nil
	}

	if c.StripeStandardPriceID == "" || c.StripePremiumPriceID == "" {
		return fmt.Errorf("STRIPE_STANDARD_PRICE_ID and STRIPE_PREMIUM_PRICE_ID are required when ENV=%s", c.Env)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
