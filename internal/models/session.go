package models

import "time"

// Session is a server-side record of an authenticated client. The token is
// opaque (a UUID) and travels only in an HttpOnly cookie; everything else
// stays in the sessions table.
type Session struct {
	Token     string    `json:"-"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// AuthStatus is the response shape of a session check.
type AuthStatus struct {
	Authenticated bool        `json:"authenticated"`
	User          *PublicUser `json:"user,omitempty"`
}

// PublicUser is the subset of User that is safe to return to clients.
type PublicUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
