package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates that no database DSN was provided.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown password hasher).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInsecureSessionSecret is returned in production when the session
	// secret is empty or equal to [DefaultSessionSecret].
	ErrInsecureSessionSecret = errors.New("session secret must be set to a non-default value in production")
)
