package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hirelane/staffdesk/internal/admin/domain"
	"github.com/hirelane/staffdesk/internal/admin/mailer"
	"github.com/hirelane/staffdesk/internal/admin/metrics"
	"github.com/hirelane/staffdesk/internal/admin/store"
	"github.com/hirelane/staffdesk/pkg/slogx"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrClientUnlinked     = errors.New("client has no linked account profile")
	ErrWelcomeAlreadySent = errors.New("welcome email already sent")
)

type ClientsService struct {
	Store   store.Store
	Mailer  mailer.Mailer
	Metrics *metrics.Metrics
}

// ListWithStatus returns the admin directory: clients joined with their
// client-role profiles, newest first, each carrying the derived
// invitation fields. Clients without a matching client-role profile are
// dropped by the joined query.
func (s *ClientsService) ListWithStatus(ctx context.Context) ([]domain.ClientWithStatus, error) {
	entries, err := s.Store.Clients().ListDirectory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list directory: %w", err)
	}

	for i := range entries {
		entries[i].InvitationStatus = domain.InvitationStatusConfirmed
		entries[i].EmailConfirmedAt = nil
	}

	s.Metrics.DirectoryListings.Inc()
	return entries, nil
}

// SendWelcomeEmail sends the onboarding email to a client's account and
// flips the welcome_email_sent flag. Sending and flag update are not
// atomic; a crash in between re-sends rather than silently skipping.
func (s *ClientsService) SendWelcomeEmail(ctx context.Context, clientID string) error {
	l := slogx.FromContext(ctx)

	client, err := s.Store.Clients().GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}

	if client.WelcomeEmailSent {
		return ErrWelcomeAlreadySent
	}
	if client.UserID == nil {
		return ErrClientUnlinked
	}

	profile, err := s.Store.Profiles().GetProfileByUserID(ctx, *client.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientUnlinked
		}
		return err
	}

	msg := welcomeMessage(client, profile)
	if err := s.Mailer.Send(ctx, msg); err != nil {
		l.Error("failed to send welcome email", "error", err, "client_id", clientID)
		return fmt.Errorf("send welcome email: %w", err)
	}

	if err := s.Store.Clients().MarkWelcomeEmailSent(ctx, clientID); err != nil {
		return fmt.Errorf("mark welcome sent: %w", err)
	}

	s.Metrics.WelcomeEmailsSent.Inc()
	l.Info("welcome email sent", "client_id", clientID, "to", profile.Email)
	return nil
}

func welcomeMessage(c domain.Client, p domain.Profile) mailer.Message {
	name := p.FullName
	if name == "" {
		name = c.CompanyName
	}

	return mailer.Message{
		To:      []string{p.Email},
		Subject: fmt.Sprintf("Welcome to Staffdesk, %s", c.CompanyName),
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your company account for <strong>%s</strong> is ready. "+
				"Sign in to post jobs and manage your staffing requests.</p>",
			name, c.CompanyName),
		Text: fmt.Sprintf(
			"Hi %s,\n\nYour company account for %s is ready. "+
				"Sign in to post jobs and manage your staffing requests.\n",
			name, c.CompanyName),
	}
}
