package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/hirelane/staffdesk/internal/admin/domain"
	"github.com/hirelane/staffdesk/internal/admin/store"
	"github.com/hirelane/staffdesk/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a per-test in-memory database. The shared cache keeps
// every pooled connection on the same database.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func strPtr(s string) *string { return &s }

func TestClientCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	c := domain.Client{
		ID:           idx.New().String(),
		UserID:       strPtr("4f2c1a9e-0001-4a7b-9d57-0f00000000aa"),
		CompanyName:  "Acme Construction",
		ContactPhone: "555-0100",
		City:         "Brisbane",
		State:        "QLD",
		Zip:          "4000",
	}
	require.NoError(t, s.Clients().CreateClient(ctx, c))

	got, err := s.Clients().GetClientByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Construction", got.CompanyName)
	require.NotNil(t, got.UserID)
	require.Equal(t, *c.UserID, *got.UserID)
	require.False(t, got.WelcomeEmailSent)

	_, err = s.Clients().GetClientByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateClientWithDanglingUserID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// The auth provider owns profiles, so a client may link a user_id with
	// no profile row behind it. The row must insert cleanly and stay out
	// of the directory until a profile appears.
	c := domain.Client{
		ID:          idx.New().String(),
		UserID:      strPtr("user-without-profile"),
		CompanyName: "Dangling Co",
	}
	require.NoError(t, s.Clients().CreateClient(ctx, c))

	got, err := s.Clients().GetClientByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.UserID)
	require.Equal(t, "user-without-profile", *got.UserID)

	entries, err := s.Clients().ListDirectory(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestListClientsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, name := range []string{"Oldest Co", "Middle Co", "Newest Co"} {
		require.NoError(t, s.Clients().CreateClient(ctx, domain.Client{
			ID:          idx.New().String(),
			CompanyName: name,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
			UpdatedAt:   base.Add(time.Duration(i) * time.Hour),
		}))
	}

	clients, err := s.Clients().ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	require.Equal(t, "Newest Co", clients[0].CompanyName)
	require.Equal(t, "Oldest Co", clients[2].CompanyName)
}

func TestListDirectoryJoinSemantics(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// A has a client-role profile, B's profile is admin, C has no profile.
	require.NoError(t, s.Profiles().CreateProfile(ctx, domain.Profile{
		UserID: "user-1", Email: "a@example.com", FullName: "Alice A",
		Role: domain.RoleClient, IsActive: true,
	}))
	require.NoError(t, s.Profiles().CreateProfile(ctx, domain.Profile{
		UserID: "user-2", Email: "b@example.com", FullName: "Bob B",
		Role: domain.RoleAdmin, IsActive: true,
	}))

	for _, c := range []domain.Client{
		{ID: idx.New().String(), UserID: strPtr("user-1"), CompanyName: "A Co"},
		{ID: idx.New().String(), UserID: strPtr("user-2"), CompanyName: "B Co"},
		{ID: idx.New().String(), UserID: strPtr("user-3"), CompanyName: "C Co"},
		{ID: idx.New().String(), UserID: nil, CompanyName: "No Account Co"},
	} {
		require.NoError(t, s.Clients().CreateClient(ctx, c))
	}

	entries, err := s.Clients().ListDirectory(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "A Co", entries[0].CompanyName)
	require.Equal(t, domain.RoleClient, entries[0].Profile.Role)
	require.Equal(t, "a@example.com", entries[0].Profile.Email)
}

func TestMarkWelcomeEmailSent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := idx.New().String()
	require.NoError(t, s.Clients().CreateClient(ctx, domain.Client{
		ID: id, CompanyName: "Welcome Co",
	}))

	require.NoError(t, s.Clients().MarkWelcomeEmailSent(ctx, id))

	got, err := s.Clients().GetClientByID(ctx, id)
	require.NoError(t, err)
	require.True(t, got.WelcomeEmailSent)

	require.ErrorIs(t, s.Clients().MarkWelcomeEmailSent(ctx, "missing"), store.ErrNotFound)
}

func TestListProfilesByUserIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i, role := range []domain.Role{domain.RoleClient, domain.RoleAdmin} {
		require.NoError(t, s.Profiles().CreateProfile(ctx, domain.Profile{
			UserID:   []string{"u-1", "u-2"}[i],
			Email:    []string{"one@example.com", "two@example.com"}[i],
			Role:     role,
			IsActive: true,
		}))
	}

	profiles, err := s.Profiles().ListProfilesByUserIDs(ctx, []string{"u-1", "u-2", "u-unknown"})
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	profiles, err = s.Profiles().ListProfilesByUserIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, profiles)
}

func TestListActiveAdmins(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seed := []domain.Profile{
		{UserID: "u-1", Email: "active-admin@example.com", Role: domain.RoleAdmin, IsActive: true},
		{UserID: "u-2", Email: "inactive-admin@example.com", Role: domain.RoleAdmin, IsActive: false},
		{UserID: "u-3", Email: "client@example.com", Role: domain.RoleClient, IsActive: true},
	}
	for _, p := range seed {
		require.NoError(t, s.Profiles().CreateProfile(ctx, p))
	}

	admins, err := s.Profiles().ListActiveAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Equal(t, "active-admin@example.com", admins[0].Email)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := idx.New().String()
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Clients().CreateClient(ctx, domain.Client{ID: id, CompanyName: "Ghost Co"}); err != nil {
			return err
		}
		return context.Canceled // force rollback
	})
	require.Error(t, err)

	_, err = s.Clients().GetClientByID(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)
}
