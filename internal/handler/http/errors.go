// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the auth middleware when the request
	// carries no session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrInvalidItemID is returned when the {id} path segment is not an
	// integer.
	ErrInvalidItemID = errors.New("invalid item id in path")
)

// Messages returned to clients in the {"error": ...} body.
const (
	msgUnauthorized           = "Unauthorized"
	msgInvalidJSON            = "Invalid JSON body"
	msgCredentialsRequired    = "Email and password are required"
	msgInvalidCredentials     = "Invalid email or password"
	msgEmailAlreadyRegistered = "Email is already registered"
	msgTitleRequired          = "Title is required"
	msgInvalidID              = "Invalid id"
	msgInvalidData            = "Invalid data provided"
	msgNotFound               = "Not found"
	msgMethodNotAllowed       = "Method not allowed"
	msgInternal               = "Internal server error"
)
