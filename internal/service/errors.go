package service

import (
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated is returned when a session token is missing,
	// invalid, or refers to a user that no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrDummyHashFailed       = errors.New("dummy password hash failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Validation errors produced by the item validation decorator.
var (
	ErrValidationEmptyTitle    = validators.ErrEmptyTitle
	ErrValidationNoUserID      = validators.ErrInvalidUserID
	ErrValidationInvalidItemID = validators.ErrInvalidItemID
)
