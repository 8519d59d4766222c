package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an empty data directory, or backups
	// enabled without a backup directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates a default size that is not a positive
	// multiple of 9, or a non-positive throttle.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidAppConfigs indicates missing token settings while the HTTP
	// API is enabled.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive worker count or queue.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAdapterConfigs indicates a client without a server address
	// or request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
