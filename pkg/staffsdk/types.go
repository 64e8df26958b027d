package staffsdk

import "time"

// ErrorResponse is the error envelope every endpoint uses. Details and
// Stack only appear in dev environments.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// ProfileInfo is the account profile attached to a directory entry.
type ProfileInfo struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// ClientEntry is one row of the admin client directory.
type ClientEntry struct {
	ID               string       `json:"id"`
	UserID           *string      `json:"user_id"`
	CompanyName      string       `json:"company_name"`
	ContactPhone     string       `json:"contact_phone,omitempty"`
	Address          string       `json:"address,omitempty"`
	Street1          string       `json:"street1,omitempty"`
	Street2          string       `json:"street2,omitempty"`
	City             string       `json:"city,omitempty"`
	State            string       `json:"state,omitempty"`
	Zip              string       `json:"zip,omitempty"`
	WelcomeEmailSent bool         `json:"welcome_email_sent"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
	Profiles         *ProfileInfo `json:"profiles"`
	InvitationStatus string       `json:"invitation_status"`
	EmailConfirmedAt *time.Time   `json:"email_confirmed_at"`
}

// ListClientsResponse is returned by GET /v1/admin/clients.
type ListClientsResponse struct {
	Success bool          `json:"success"`
	Clients []ClientEntry `json:"clients"`
}

// TestAlertRequest selects which alert template to exercise.
type TestAlertRequest struct {
	AlertType string `json:"alertType"`
}

// TestAlertResponse reports the outcome of a test alert dispatch.
type TestAlertResponse struct {
	Message      string `json:"message"`
	EmailsSent   bool   `json:"emailsSent"`
	SuccessCount int    `json:"successCount"`
	FailureCount int    `json:"failureCount"`
}

// WelcomeEmailResponse is returned after a welcome email send.
type WelcomeEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PricingTier is one entry of the job pricing configuration. Price is in
// cents.
type PricingTier struct {
	Price       int64  `json:"price"`
	Label       string `json:"label"`
	Description string `json:"description"`
	PriceID     string `json:"priceId"`
}

// PricingResponse maps job classifications to their pricing tier.
type PricingResponse struct {
	Tiers map[string]PricingTier `json:"tiers"`
}

// CheckoutSessionRequest creates a hosted checkout session for a job
// posting fee.
type CheckoutSessionRequest struct {
	Classification string `json:"classification"`
	SuccessURL     string `json:"successUrl"`
	CancelURL      string `json:"cancelUrl"`
}

// CheckoutSessionResponse carries the redirect target for the hosted
// checkout flow.
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// HealthResponse is returned by the liveness and readiness endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
