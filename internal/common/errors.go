// Package common defines shared constants and sentinel errors used across
// the catalog services. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Access-control errors raised by the catalog engine.
	ErrUnauthenticated  = errors.New("auth required")
	ErrPermissionDenied = errors.New("permission denied")

	// Session-service errors.
	ErrInvalidSession   = errors.New("invalid session")
	ErrSessionTableFull = errors.New("session table full")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
