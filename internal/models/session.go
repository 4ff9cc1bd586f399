package models

import "time"

// Session is one server-side session row, keyed by the value of the
// session cookie. The user projection is denormalized onto the row so
// the expiry sweep can batch-update users without a join per session.
type Session struct {
	ID        string      `json:"id"`
	User      SessionUser `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
	CreatedAt time.Time   `json:"created_at"`
}

// Expired reports whether the session lapsed before `now`.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
