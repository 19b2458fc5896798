package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidSecretsConfigs indicates an unknown secret store backend or a
	// backend missing its location (path, DSN or URL).
	ErrInvalidSecretsConfigs = errors.New("invalid secrets configuration")
	// ErrInvalidServerConfigs indicates invalid data-bag server settings
	// (for example, missing listen address or token sign key).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative converge interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
