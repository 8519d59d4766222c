package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-keeper/internal/codec"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/session"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/models"
)

type vaultService struct {
	store    store.VaultStore
	codec    codec.BlobCodec
	registry *session.Registry

	logger *logger.Logger
}

func NewVaultService(s store.VaultStore, c codec.BlobCodec, registry *session.Registry, log *logger.Logger) VaultService {
	return &vaultService{
		store:    s,
		codec:    c,
		registry: registry,
		logger:   log.Component("vault-service"),
	}
}

func (v *vaultService) ListVaults(ctx context.Context, owner models.OwnerID) ([]int, error) {
	numbers, err := v.store.ListVaultNumbers(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list vaults of %s: %w", owner, err)
	}
	return numbers, nil
}

func (v *vaultService) VaultExists(ctx context.Context, vault models.VaultIdentity) (bool, error) {
	return v.store.VaultExists(ctx, vault)
}

func (v *vaultService) PeekVault(ctx context.Context, vault models.VaultIdentity) (models.ContainerSnapshot, error) {
	if c, ok := v.registry.Live(vault); ok {
		return c.Snapshot(), nil
	}

	blob, ok, err := v.store.ReadSlot(ctx, vault)
	if err != nil {
		return models.ContainerSnapshot{}, fmt.Errorf("read vault %s: %w", vault, err)
	}
	if !ok {
		return models.ContainerSnapshot{}, fmt.Errorf("%w: %s", ErrVaultNotFound, vault)
	}

	snapshot, err := v.codec.Decode(blob, vault.Owner)
	if err != nil {
		return models.ContainerSnapshot{}, fmt.Errorf("decode vault %s: %w", vault, err)
	}
	if snapshot == nil {
		return models.EmptySnapshot(0), nil
	}
	return *snapshot, nil
}

// DeleteVault removes vault and drops its live container, so the next open
// starts from the deletion instead of resurrecting the contents. The container
// is dropped again afterwards in case it was reopened in between.
func (v *vaultService) DeleteVault(ctx context.Context, vault models.VaultIdentity) error {
	log := logger.FromContext(ctx)

	v.registry.Invalidate(vault)
	defer v.registry.Invalidate(vault)

	if err := v.store.DeleteVault(ctx, vault); err != nil {
		log.Err(err).Str("vault", vault.String()).Msg("failed to delete vault")
		return fmt.Errorf("delete vault %s: %w", vault, err)
	}
	return nil
}

func (v *vaultService) DeleteAllVaults(ctx context.Context, owner models.OwnerID) error {
	log := logger.FromContext(ctx)

	v.registry.InvalidateOwner(owner)
	defer v.registry.InvalidateOwner(owner)

	if err := v.store.DeleteAllVaults(ctx, owner); err != nil {
		log.Err(err).Str("owner", owner.String()).Msg("failed to delete vaults")
		return fmt.Errorf("delete vaults of %s: %w", owner, err)
	}
	return nil
}

func (v *vaultService) Failures(context.Context) []models.SaveFailure {
	return v.store.Failures()
}
