// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the vault
// service. It aggregates all sub-configurations and is populated by merging
// environment variables, command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the log level and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the on-disk layout of owner documents and backups.
	Storage Storage `envPrefix:"STORAGE_"`

	// Vaults holds vault sizing and save-guard timings.
	Vaults Vaults `envPrefix:"VAULTS_"`

	// Policy holds the blocked-item rules consulted on every mutation.
	Policy Policy `envPrefix:"POLICY_"`

	// Server holds the administrative HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds the persist pipeline sizing.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC key used to sign and verify admin API tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and required from every token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens minted by vaultctl.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogLevel filters log output ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the owner file store.
type Storage struct {
	// Files holds the file-system layout.
	Files Files `envPrefix:"FILES_"`
}

// Files holds the file-system settings of the owner file store.
type Files struct {
	// DataDir holds one <owner>.yml document per owner.
	// Env: STORAGE_FILES_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// BackupDir receives the previous version of a document on every save.
	// Env: STORAGE_FILES_BACKUP_DIR
	BackupDir string `env:"BACKUP_DIR"`

	// DisableBackups turns backup rotation off.
	// Env: STORAGE_FILES_DISABLE_BACKUPS
	DisableBackups bool `env:"DISABLE_BACKUPS"`
}

// Vaults holds vault sizing and save-guard timings.
type Vaults struct {
	// DefaultSize replaces requested sizes that are not a positive multiple of 9.
	// Env: VAULTS_DEFAULT_SIZE
	DefaultSize int `env:"DEFAULT_SIZE"`

	// SaveThrottle is the minimum interval between two committed saves of the
	// same vault.
	// Env: VAULTS_SAVE_THROTTLE
	SaveThrottle time.Duration `env:"SAVE_THROTTLE"`

	// RenameRetryDelay is the pause before the single rename retry.
	// Env: VAULTS_RENAME_RETRY_DELAY
	RenameRetryDelay time.Duration `env:"RENAME_RETRY_DELAY"`

	// FailureJournalSize bounds the in-memory list of recent save failures.
	// Env: VAULTS_FAILURE_JOURNAL_SIZE
	FailureJournalSize int `env:"FAILURE_JOURNAL_SIZE"`
}

// Policy holds the blocked-item rules.
type Policy struct {
	// BlockedTypes lists item types that may not be placed in a vault.
	// Env: POLICY_BLOCKED_TYPES (comma separated)
	BlockedTypes []string `env:"BLOCKED_TYPES" envSeparator:","`

	// BlockedEnchantments lists enchantments that may not enter a vault.
	// Env: POLICY_BLOCKED_ENCHANTMENTS (comma separated)
	BlockedEnchantments []string `env:"BLOCKED_ENCHANTMENTS" envSeparator:","`

	// BlockWithModelData blocks every item carrying custom model data.
	// Env: POLICY_BLOCK_WITH_MODEL_DATA
	BlockWithModelData bool `env:"BLOCK_WITH_MODEL_DATA"`

	// BlockWithoutModelData blocks every item without custom model data.
	// Env: POLICY_BLOCK_WITHOUT_MODEL_DATA
	BlockWithoutModelData bool `env:"BLOCK_WITHOUT_MODEL_DATA"`
}

// Server holds network and timeout settings for the HTTP API.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration of the persist pipeline.
type Workers struct {
	// PersistWorkers is the number of goroutines writing owner files.
	// Env: WORKERS_PERSIST_WORKERS
	PersistWorkers int `env:"PERSIST_WORKERS"`

	// QueueSize is the capacity of the persist job queue.
	// Env: WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from environment variables, command-line flags, the optional JSON file and
// the defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
