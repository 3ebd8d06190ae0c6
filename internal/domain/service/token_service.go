package service

import "time"

// TokenInspector reads what it can from a session token without verifying
// it; verification is the API's job.
type TokenInspector interface {
	// Expired reports whether the token declares an expiry before now.
	// Opaque tokens never expire from the client's point of view.
	Expired(token string, now time.Time) bool
}
