package domain

import "time"

// Session is the identity payload issued after a successful login or
// registration. It is constructed fresh every time and handed to the
// session store, which owns its lifecycle from there.
type Session struct {
	ID        string    `json:"-"` // row id, referenced by the cookie token
	AccountID string    `json:"account_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"-"`
}

// Expired reports whether the session is past its expiry at time now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
