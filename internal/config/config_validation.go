// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. It runs after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.App.PasswordHasher {
	case "sha256", "bcrypt":
	default:
		return fmt.Errorf("%w: unknown password hasher %q", ErrInvalidAppConfigs, cfg.App.PasswordHasher)
	}

	if cfg.App.SessionCookieName == "" {
		return fmt.Errorf("%w: empty session cookie name", ErrInvalidAppConfigs)
	}

	if cfg.App.IsProduction() && (cfg.App.SessionSecret == "" || cfg.App.SessionSecret == DefaultSessionSecret) {
		return ErrInsecureSessionSecret
	}

	if cfg.App.SessionSecret == "" {
		return fmt.Errorf("%w: empty session secret", ErrInvalidAppConfigs)
	}

	return nil
}
