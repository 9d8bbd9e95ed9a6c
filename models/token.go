package models

// SessionClaims is the payload carried by a session token.
//
// Claims are signed, not encrypted: anyone holding the cookie can read them,
// so they carry identity only. They are never persisted.
type SessionClaims struct {
	// UserID identifies the authenticated user.
	UserID int64 `json:"userId"`

	// Email is informational; the user is always re-read by UserID.
	Email string `json:"email"`
}

// NewSessionClaims builds the claims issued for u.
func NewSessionClaims(u User) SessionClaims {
	return SessionClaims{UserID: u.ID, Email: u.Email}
}
