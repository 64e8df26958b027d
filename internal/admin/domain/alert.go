package domain

import "time"

// AlertType tags the admin notification being sent.
type AlertType string

const (
	AlertClientRegistered AlertType = "client_registered"
	AlertNoSaleJobStaged  AlertType = "no_sale_job_staged"
	AlertJobStatusUpdate  AlertType = "job_status_update"
)

// Valid reports whether t is one of the known alert types.
func (t AlertType) Valid() bool {
	switch t {
	case AlertClientRegistered, AlertNoSaleJobStaged, AlertJobStatusUpdate:
		return true
	}
	return false
}

// AlertPayload carries the fields the alert templates interpolate.
type AlertPayload struct {
	AlertType    AlertType
	ClientName   string
	ClientEmail  string
	CompanyName  string
	JobTitle     string
	SignupDate   time.Time
	DashboardURL string
}

// AlertResult summarizes a dispatch: whether real emails went out (false
// when no mail provider is configured) and per-recipient counts.
type AlertResult struct {
	Message      string
	EmailsSent   bool
	SuccessCount int
	FailureCount int
}
