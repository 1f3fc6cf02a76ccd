package config

import "errors"

// Validation errors returned when a configuration group is incomplete.
var (
	// ErrInvalidAdapterConfigs: malformed sync URL, missing token or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs: empty or in-memory DSN, negative quota, S3 without region.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs: unknown tier or missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs: non-positive intervals.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs: missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
