package config

import (
	"path/filepath"
	"time"
)

// Default values applied to every field the other sources left empty.
const (
	DefaultVaultSize          = 54
	DefaultSaveThrottle       = 500 * time.Millisecond
	DefaultRenameRetryDelay   = 20 * time.Millisecond
	DefaultFailureJournalSize = 50
	DefaultPersistWorkers     = 2
	DefaultQueueSize          = 256
	DefaultHTTPAddress        = "localhost:8080"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultTokenIssuer        = "vaultd"
	DefaultTokenDuration      = time.Hour
)

// Defaults returns the built-in configuration.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      "debug",
			Version:       "dev",
		},
		Storage: Storage{
			Files: Files{
				DataDir:   filepath.Join("data", "vaults"),
				BackupDir: filepath.Join("data", "backups"),
			},
		},
		Vaults: Vaults{
			DefaultSize:        DefaultVaultSize,
			SaveThrottle:       DefaultSaveThrottle,
			RenameRetryDelay:   DefaultRenameRetryDelay,
			FailureJournalSize: DefaultFailureJournalSize,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			PersistWorkers: DefaultPersistWorkers,
			QueueSize:      DefaultQueueSize,
		},
	}
}
