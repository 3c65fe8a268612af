package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingSessionSecret indicates that no session cookie signing
	// secret was supplied by any configuration source.
	ErrMissingSessionSecret = errors.New("session secret is not configured")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive session lifetime).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive cleanup interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
