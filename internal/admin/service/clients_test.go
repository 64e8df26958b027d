package service

import (
	"context"
	"testing"

	"github.com/hirelane/staffdesk/internal/admin/domain"
	"github.com/hirelane/staffdesk/internal/admin/mailer"
	"github.com/hirelane/staffdesk/internal/admin/metrics"
	"github.com/hirelane/staffdesk/internal/admin/store"
	"github.com/hirelane/staffdesk/internal/admin/store/drivers/sqlite"
	"github.com/hirelane/staffdesk/pkg/idx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore("file:svc_" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func strPtr(s string) *string { return &s }

func seedClient(t *testing.T, st store.Store, userID *string, company string) string {
	t.Helper()
	id := idx.New().String()
	require.NoError(t, st.Clients().CreateClient(context.Background(), domain.Client{
		ID:          id,
		UserID:      userID,
		CompanyName: company,
	}))
	return id
}

func seedProfile(t *testing.T, st store.Store, userID, email string, role domain.Role) {
	t.Helper()
	require.NoError(t, st.Profiles().CreateProfile(context.Background(), domain.Profile{
		UserID:   userID,
		Email:    email,
		FullName: "Person " + userID,
		Role:     role,
		IsActive: true,
	}))
}

func TestListWithStatusFiltersToClientRoleProfiles(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ClientsService{Store: st, Mailer: &recordingMailer{configured: true}, Metrics: newTestMetrics()}

	// A has a client-role profile, B's profile is admin, C has no profile.
	seedProfile(t, st, "user-1", "a@example.com", domain.RoleClient)
	seedProfile(t, st, "user-2", "b@example.com", domain.RoleAdmin)
	seedClient(t, st, strPtr("user-1"), "A Co")
	seedClient(t, st, strPtr("user-2"), "B Co")
	seedClient(t, st, strPtr("user-3"), "C Co")

	entries, err := svc.ListWithStatus(ctx)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	require.Equal(t, "A Co", entries[0].CompanyName)
	require.Equal(t, domain.RoleClient, entries[0].Profile.Role)
	require.Equal(t, domain.InvitationStatusConfirmed, entries[0].InvitationStatus)
	require.Nil(t, entries[0].EmailConfirmedAt)
}

func TestListWithStatusEmptyDirectory(t *testing.T) {
	ctx := context.Background()
	svc := &ClientsService{Store: newTestStore(t), Metrics: newTestMetrics()}

	entries, err := svc.ListWithStatus(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSendWelcomeEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mail := &recordingMailer{configured: true}
	svc := &ClientsService{Store: st, Mailer: mail, Metrics: newTestMetrics()}

	seedProfile(t, st, "user-1", "owner@acme.example", domain.RoleClient)
	id := seedClient(t, st, strPtr("user-1"), "Acme Construction")

	require.NoError(t, svc.SendWelcomeEmail(ctx, id))
	require.Len(t, mail.sent, 1)
	require.Equal(t, []string{"owner@acme.example"}, mail.sent[0].To)
	require.Contains(t, mail.sent[0].Subject, "Acme Construction")

	got, err := st.Clients().GetClientByID(ctx, id)
	require.NoError(t, err)
	require.True(t, got.WelcomeEmailSent)

	// Second send is rejected, not silently repeated.
	require.ErrorIs(t, svc.SendWelcomeEmail(ctx, id), ErrWelcomeAlreadySent)
	require.Len(t, mail.sent, 1)
}

func TestSendWelcomeEmailErrors(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ClientsService{Store: st, Mailer: &recordingMailer{configured: true}, Metrics: newTestMetrics()}

	require.ErrorIs(t, svc.SendWelcomeEmail(ctx, "missing"), ErrClientNotFound)

	unlinked := seedClient(t, st, nil, "Unlinked Co")
	require.ErrorIs(t, svc.SendWelcomeEmail(ctx, unlinked), ErrClientUnlinked)

	// Linked to a user id with no profile behind it.
	orphan := seedClient(t, st, strPtr("user-gone"), "Orphan Co")
	require.ErrorIs(t, svc.SendWelcomeEmail(ctx, orphan), ErrClientUnlinked)
}

// recordingMailer captures messages and can fail specific recipients.
type recordingMailer struct {
	configured bool
	failFor    map[string]bool
	sent       []mailer.Message
}

func (m *recordingMailer) Configured() bool { return m.configured }

func (m *recordingMailer) Send(ctx context.Context, msg mailer.Message) error {
	for _, to := range msg.To {
		if m.failFor[to] {
			return context.DeadlineExceeded
		}
	}
	m.sent = append(m.sent, msg)
	return nil
}
