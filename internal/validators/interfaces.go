// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks notes and credentials before they reach the
// storage layer. Services receive a Validator and call it with the field
// names relevant to the operation, so an update can require an id that a
// create must not carry.
package validators

import "context"

// Validator checks obj and returns an error wrapping one of the package
// sentinels on failure. When fields is empty a type-specific default set
// is checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
