package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hirelane/staffdesk/internal/admin/domain"
	"github.com/hirelane/staffdesk/internal/admin/mailer"
	"github.com/hirelane/staffdesk/internal/admin/metrics"
	"github.com/hirelane/staffdesk/internal/admin/store"
	"github.com/hirelane/staffdesk/pkg/slogx"
)

var ErrUnknownAlertType = errors.New("unknown alert type")

type AlertsService struct {
	Store   store.Store
	Mailer  mailer.Mailer
	Metrics *metrics.Metrics
}

// Dispatch sends an alert to every active admin profile. One attempt per
// recipient, no retries; failures only affect the counts.
func (s *AlertsService) Dispatch(ctx context.Context, payload domain.AlertPayload) (domain.AlertResult, error) {
	l := slogx.FromContext(ctx)

	if !payload.AlertType.Valid() {
		return domain.AlertResult{}, ErrUnknownAlertType
	}

	admins, err := s.Store.Profiles().ListActiveAdmins(ctx)
	if err != nil {
		return domain.AlertResult{}, fmt.Errorf("list alert recipients: %w", err)
	}

	if len(admins) == 0 {
		return domain.AlertResult{
			Message:    fmt.Sprintf("No admin recipients configured for %q alert", payload.AlertType),
			EmailsSent: false,
		}, nil
	}

	msg := renderAlert(payload)

	if !s.Mailer.Configured() {
		// Log-only mode: record the alert but report nothing as sent.
		_ = s.Mailer.Send(ctx, msg)
		return domain.AlertResult{
			Message:    fmt.Sprintf("%q alert logged (email provider not configured)", payload.AlertType),
			EmailsSent: false,
		}, nil
	}

	result := domain.AlertResult{}
	for _, admin := range admins {
		per := msg
		per.To = []string{admin.Email}

		if err := s.Mailer.Send(ctx, per); err != nil {
			l.Error("alert email failed", "error", err, "to", admin.Email, "alert_type", payload.AlertType)
			s.Metrics.AlertEmailFailures.Inc()
			result.FailureCount++
			continue
		}
		result.SuccessCount++
	}

	s.Metrics.AlertsDispatched.WithLabelValues(string(payload.AlertType)).Inc()

	result.EmailsSent = result.SuccessCount > 0
	result.Message = fmt.Sprintf("Sent %q alert to %d of %d admin recipient(s)",
		payload.AlertType, result.SuccessCount, len(admins))

	l.Info("alert dispatched",
		"alert_type", payload.AlertType,
		"success_count", result.SuccessCount,
		"failure_count", result.FailureCount,
	)
	return result, nil
}

// NewTestPayload builds the fixed synthetic payload the alert tester
// sends. The dashboard URL derives from the caller's origin, falling back
// to the configured base URL.
func NewTestPayload(alertType domain.AlertType, origin, fallbackBaseURL string, now time.Time) domain.AlertPayload {
	base := strings.TrimSuffix(origin, "/")
	if base == "" {
		base = strings.TrimSuffix(fallbackBaseURL, "/")
	}

	return domain.AlertPayload{
		AlertType:    alertType,
		ClientName:   "Test Client",
		ClientEmail:  "test@example.com",
		CompanyName:  "Test Company Inc.",
		JobTitle:     "Senior Software Engineer",
		SignupDate:   now,
		DashboardURL: base + "/dashboard",
	}
}

func renderAlert(p domain.AlertPayload) mailer.Message {
	signup := p.SignupDate.UTC().Format(time.RFC3339)

	var subject, body string
	switch p.AlertType {
	case domain.AlertClientRegistered:
		subject = fmt.Sprintf("New client registered: %s", p.CompanyName)
		body = fmt.Sprintf("%s (%s) registered %s on %s.",
			p.ClientName, p.ClientEmail, p.CompanyName, signup)
	case domain.AlertNoSaleJobStaged:
		subject = fmt.Sprintf("Job staged without sale: %s", p.JobTitle)
		body = fmt.Sprintf("%s staged the job %q without completing payment.",
			p.CompanyName, p.JobTitle)
	case domain.AlertJobStatusUpdate:
		subject = fmt.Sprintf("Job status update: %s", p.JobTitle)
		body = fmt.Sprintf("The job %q for %s has a status update.",
			p.JobTitle, p.CompanyName)
	}

	return mailer.Message{
		Subject: subject,
		HTML: fmt.Sprintf("<p>%s</p><p><a href=%q>Open the dashboard</a></p>",
			body, p.DashboardURL),
		Text: fmt.Sprintf("%s\n\nDashboard: %s\n", body, p.DashboardURL),
	}
}
