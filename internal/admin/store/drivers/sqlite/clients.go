package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/hirelane/staffdesk/internal/admin/domain"
	"github.com/hirelane/staffdesk/internal/admin/store"
)

type clientsRepo struct {
	db dbtx
}

const clientColumns = `id, user_id, company_name, contact_phone, address,
	street1, street2, city, state, zip, welcome_email_sent, created_at, updated_at`

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)

	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// ListDirectory is the joined directory query: clients inner-joined with
// their profiles, restricted to role "client". Replaces the old two-step
// fetch-then-merge.
func (r *clientsRepo) ListDirectory(ctx context.Context) ([]domain.ClientWithStatus, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.user_id, c.company_name, c.contact_phone, c.address,
		       c.street1, c.street2, c.city, c.state, c.zip,
		       c.welcome_email_sent, c.created_at, c.updated_at,
		       p.user_id, p.email, p.full_name, p.role, p.is_active,
		       p.created_at, p.updated_at
		FROM clients c
		INNER JOIN profiles p ON p.user_id = c.user_id
		WHERE p.role = ?
		ORDER BY c.created_at DESC`,
		string(domain.RoleClient))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ClientWithStatus
	for rows.Next() {
		var (
			entry  domain.ClientWithStatus
			userID sql.NullString
			role   string
		)
		err := rows.Scan(
			&entry.ID, &userID, &entry.CompanyName, &entry.ContactPhone,
			&entry.Address, &entry.Street1, &entry.Street2, &entry.City,
			&entry.State, &entry.Zip, &entry.WelcomeEmailSent,
			&entry.CreatedAt, &entry.UpdatedAt,
			&entry.Profile.UserID, &entry.Profile.Email,
			&entry.Profile.FullName, &role, &entry.Profile.IsActive,
			&entry.Profile.CreatedAt, &entry.Profile.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entry.Client.UserID = mapNullStringPtr(userID)
		entry.Profile.Role = domain.Role(role)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (id, user_id, company_name, contact_phone, address,
			street1, street2, city, state, zip, welcome_email_sent,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, mapOptionalString(c.UserID), c.CompanyName, c.ContactPhone,
		c.Address, c.Street1, c.Street2, c.City, c.State, c.Zip,
		c.WelcomeEmailSent, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *clientsRepo) MarkWelcomeEmailSent(ctx context.Context, clientID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients SET welcome_email_sent = 1, updated_at = ?
		WHERE id = ?`,
		time.Now().UTC(), clientID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (domain.Client, error) {
	var (
		c      domain.Client
		userID sql.NullString
	)
	err := row.Scan(
		&c.ID, &userID, &c.CompanyName, &c.ContactPhone, &c.Address,
		&c.Street1, &c.Street2, &c.City, &c.State, &c.Zip,
		&c.WelcomeEmailSent, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Client{}, err
	}
	c.UserID = mapNullStringPtr(userID)
	return c, nil
}
