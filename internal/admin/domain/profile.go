package domain

import "time"

// Role is the account role stored on a profile.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// Profile is the account profile the auth provider keys by user ID.
type Profile struct {
	UserID    string
	Email     string
	FullName  string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
