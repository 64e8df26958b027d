package domain

import "time"

// Client is a customer company account on the platform. UserID links the
// record to the auth provider account that owns it; legacy imports may
// have no linked account yet, so it is nullable.
type Client struct {
	ID               string
	UserID           *string
	CompanyName      string
	ContactPhone     string
	Address          string
	Street1          string
	Street2          string
	City             string
	State            string
	Zip              string
	WelcomeEmailSent bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
