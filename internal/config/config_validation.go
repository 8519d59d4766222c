// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-vault-keeper/models"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Files.DataDir == "" {
		return ErrInvalidStorageConfigs
	}
	if !cfg.Storage.Files.DisableBackups && cfg.Storage.Files.BackupDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Vaults.DefaultSize <= 0 || cfg.Vaults.DefaultSize%9 != 0 || cfg.Vaults.DefaultSize > models.MaxContainerSize {
		return ErrInvalidVaultConfigs
	}
	if cfg.Vaults.SaveThrottle <= 0 || cfg.Vaults.RenameRetryDelay < 0 || cfg.Vaults.FailureJournalSize <= 0 {
		return ErrInvalidVaultConfigs
	}

	if cfg.Workers.PersistWorkers <= 0 || cfg.Workers.QueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Server.HTTPAddress != "" && (cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "") {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
