package store

import (
	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/workers"
)

// Storages aggregates every storage component of the service.
type Storages struct {
	VaultStore VaultStore
}

// NewStorages opens the owner file store described by cfg. Persist jobs are
// submitted to queue.
func NewStorages(cfg *config.StructuredConfig, queue workers.JobQueue, log *logger.Logger) (*Storages, error) {
	vaultStore, err := Open(cfg.Storage, cfg.Vaults, queue, log)
	if err != nil {
		return nil, err
	}

	return &Storages{VaultStore: vaultStore}, nil
}

// Close releases every storage component.
func (s *Storages) Close() error {
	return s.VaultStore.Close()
}
