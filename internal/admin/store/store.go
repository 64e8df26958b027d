package store

import (
	"context"
	"errors"

	"github.com/hirelane/staffdesk/internal/admin/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Clients() Clients
	Profiles() Profiles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil and
	// rolling back on error. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	// GetClientByID returns a client by id.
	GetClientByID(ctx context.Context, id string) (domain.Client, error)

	// ListClients returns all clients ordered by creation date (newest first).
	ListClients(ctx context.Context) ([]domain.Client, error)

	// ListDirectory returns clients joined with their profiles, restricted
	// to profiles with role "client", newest client first. Clients with no
	// linked profile never appear.
	ListDirectory(ctx context.Context) ([]domain.ClientWithStatus, error)

	// CreateClient inserts a new client (id is provided by app via ULID).
	CreateClient(ctx context.Context, c domain.Client) error

	// MarkWelcomeEmailSent flips welcome_email_sent and bumps updated_at.
	MarkWelcomeEmailSent(ctx context.Context, clientID string) error
}

type Profiles interface {
	// GetProfileByUserID fetches a profile by its auth-provider user id.
	GetProfileByUserID(ctx context.Context, userID string) (domain.Profile, error)

	// ListProfilesByUserIDs fetches all profiles whose user_id is in ids.
	// Missing ids are silently absent from the result.
	ListProfilesByUserIDs(ctx context.Context, ids []string) ([]domain.Profile, error)

	// ListActiveAdmins returns all active profiles with role "admin".
	ListActiveAdmins(ctx context.Context) ([]domain.Profile, error)

	// CreateProfile inserts a new profile.
	CreateProfile(ctx context.Context, p domain.Profile) error
}
