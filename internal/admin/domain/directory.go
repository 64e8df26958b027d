package domain

import "time"

// Invitation status constants for the merged directory view.
//
// TODO: derive these from the auth provider's email-confirmation data once
// the admin API exposes it; until then every listed client reports
// "confirmed" with no confirmation timestamp.
const InvitationStatusConfirmed = "confirmed"

// ClientWithStatus is the merged directory view: a client enriched with
// its profile and derived invitation fields. Built per request, never
// persisted. Only clients whose profile exists and has role "client" are
// represented.
type ClientWithStatus struct {
	Client

	Profile          Profile
	InvitationStatus string
	EmailConfirmedAt *time.Time
}
