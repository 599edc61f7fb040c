// Package common defines shared constants and sentinel errors used across
// client and server layers of DraftKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Service-level errors (generic/internal flow control).
	ErrInternal  = errors.New("internal error")
	ErrForbidden = errors.New("forbidden")

	// Save-path errors (client-correctable).
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrRateLimited     = errors.New("rate limited")

	// Data-integrity errors. A corrupted or schema-incompatible draft is
	// resolved to "absent" at the service boundary, never returned to a form.
	ErrCorrupted          = errors.New("record corrupted")
	ErrSchemaIncompatible = errors.New("schema incompatible")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
