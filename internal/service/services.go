package service

import (
	"github.com/MKhiriev/go-vault-keeper/internal/codec"
	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/session"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/workers"
)

type Services struct {
	AuthService      AuthService
	AppInfoService   AppInfoService
	VaultService     VaultService
	SaveOrchestrator SaveOrchestrator

	// Registry is shared by the orchestrator and the vault service.
	Registry *session.Registry
}

// NewServices wires the services on top of storages. closer may be nil when
// no host can close views on request.
func NewServices(storages *store.Storages, queue workers.JobQueue, closer ViewCloser, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	blobCodec := codec.NewBlobCodec()
	registry := session.NewRegistry(NewVaultLoader(storages.VaultStore, blobCodec, cfg.Vaults.DefaultSize, logger), logger)

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
		VaultService:   NewVaultService(storages.VaultStore, blobCodec, registry, logger),
		SaveOrchestrator: NewSaveOrchestrator(OrchestratorDeps{
			Registry: registry,
			Store:    storages.VaultStore,
			Codec:    blobCodec,
			Policy:   NewItemPolicy(cfg.Policy, logger),
			Closer:   closer,
			Queue:    queue,
		}, cfg.Vaults, logger),
		Registry: registry,
	}, nil
}
