package models

import "time"

// User represents an account entity used for authentication and item ownership.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user. Items reference it as owner.
	ID int64 `json:"id"`

	// Email is the unique, case-sensitive login identifier.
	Email string `json:"email"`

	// PasswordHash is the digest produced by the configured password hasher.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the login and registration request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
