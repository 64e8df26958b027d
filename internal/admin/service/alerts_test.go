package service

import (
	"context"
	"testing"
	"time"

	"github.com/hirelane/staffdesk/internal/admin/domain"
	"github.com/stretchr/testify/require"
)

func TestDispatchCountsPerRecipient(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &recordingMailer{configured: true}
	svc := &AlertsService{Store: st, Mailer: mail, Metrics: newTestMetrics()}

	seedProfile(t, st, "admin-1", "ops1@example.com", domain.RoleAdmin)
	seedProfile(t, st, "admin-2", "ops2@example.com", domain.RoleAdmin)
	seedProfile(t, st, "user-1", "client@example.com", domain.RoleClient)

	payload := NewTestPayload(domain.AlertClientRegistered, "https://app.example.com", "", time.Now())
	result, err := svc.Dispatch(ctx, payload)
	require.NoError(t, err)

	require.True(t, result.EmailsSent)
	require.Equal(t, 2, result.SuccessCount)
	require.Equal(t, 0, result.FailureCount)
	require.Len(t, mail.sent, 2)
	require.Contains(t, result.Message, "2 of 2")
}

func TestDispatchPartialFailure(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &recordingMailer{
		configured: true,
		failFor:    map[string]bool{"ops2@example.com": true},
	}
	svc := &AlertsService{Store: st, Mailer: mail, Metrics: newTestMetrics()}

	seedProfile(t, st, "admin-1", "ops1@example.com", domain.RoleAdmin)
	seedProfile(t, st, "admin-2", "ops2@example.com", domain.RoleAdmin)

	result, err := svc.Dispatch(ctx, NewTestPayload(domain.AlertJobStatusUpdate, "", "https://fallback.example.com", time.Now()))
	require.NoError(t, err)

	require.True(t, result.EmailsSent)
	require.Equal(t, 1, result.SuccessCount)
	require.Equal(t, 1, result.FailureCount)
}

func TestDispatchNoRecipients(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &recordingMailer{configured: true}
	svc := &AlertsService{Store: st, Mailer: mail, Metrics: newTestMetrics()}

	seedProfile(t, st, "user-1", "client@example.com", domain.RoleClient)

	result, err := svc.Dispatch(ctx, NewTestPayload(domain.AlertNoSaleJobStaged, "https://app.example.com", "", time.Now()))
	require.NoError(t, err)

	require.False(t, result.EmailsSent)
	require.Zero(t, result.SuccessCount)
	require.Contains(t, result.Message, "No admin recipients")
	require.Empty(t, mail.sent)
}

func TestDispatchUnconfiguredMailerLogsOnly(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &recordingMailer{configured: false}
	svc := &AlertsService{Store: st, Mailer: mail, Metrics: newTestMetrics()}

	seedProfile(t, st, "admin-1", "ops1@example.com", domain.RoleAdmin)

	result, err := svc.Dispatch(ctx, NewTestPayload(domain.AlertClientRegistered, "https://app.example.com", "", time.Now()))
	require.NoError(t, err)

	require.False(t, result.EmailsSent)
	require.Contains(t, result.Message, "not configured")
}

func TestDispatchRejectsUnknownAlertType(t *testing.T) {
	svc := &AlertsService{Store: newTestStore(t), Mailer: &recordingMailer{}, Metrics: newTestMetrics()}

	_, err := svc.Dispatch(context.Background(), domain.AlertPayload{AlertType: "bogus"})
	require.ErrorIs(t, err, ErrUnknownAlertType)
}

func TestNewTestPayload(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p := NewTestPayload(domain.AlertClientRegistered, "https://app.example.com/", "https://fallback.example.com", now)
	require.Equal(t, "https://app.example.com/dashboard", p.DashboardURL)
	require.Equal(t, "Test Client", p.ClientName)
	require.Equal(t, "test@example.com", p.ClientEmail)
	require.Equal(t, "Test Company Inc.", p.CompanyName)
	require.Equal(t, "Senior Software Engineer", p.JobTitle)
	require.Equal(t, now, p.SignupDate)

	p = NewTestPayload(domain.AlertClientRegistered, "", "https://fallback.example.com", now)
	require.Equal(t, "https://fallback.example.com/dashboard", p.DashboardURL)
}
