package store

import (
	"context"

	"github.com/MKhiriev/go-vault-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultStore is the owner file store: one cached document per owner, written
// to disk asynchronously.
type VaultStore interface {
	// GetDocument returns the cached document of owner, loading it from disk
	// on first access. A missing file yields ErrDocumentNotFound unless
	// createIfMissing is set.
	GetDocument(ctx context.Context, owner models.OwnerID, createIfMissing bool) (*OwnerDocument, error)

	// ReadSlot returns the stored blob of a vault and whether it exists.
	ReadSlot(ctx context.Context, vault models.VaultIdentity) (string, bool, error)

	// WriteSlot stages blob for vault and flushes the owner. It returns
	// ErrSaveThrottled when the vault was saved less than the throttle
	// interval ago.
	WriteSlot(ctx context.Context, vault models.VaultIdentity, blob string) error

	// StageSlot stores blob for vault in the cached document without queueing
	// a persist. It never blocks on the worker pool. A stage whose flush
	// fails does not count against the throttle window.
	StageSlot(ctx context.Context, vault models.VaultIdentity, blob string) error

	// Flush queues a persist of the owner's document. It may block while the
	// worker queue is full.
	Flush(ctx context.Context, owner models.OwnerID) error

	// VaultExists reports whether owner has a vault with that number.
	VaultExists(ctx context.Context, vault models.VaultIdentity) (bool, error)

	// ListVaultNumbers returns the owner's vault numbers in ascending order.
	ListVaultNumbers(ctx context.Context, owner models.OwnerID) ([]int, error)

	// DeleteVault removes one vault and schedules a rewrite of the owner file.
	DeleteVault(ctx context.Context, vault models.VaultIdentity) error

	// DeleteAllVaults evicts the owner from the cache and removes the owner
	// file. Either the file is gone or it is untouched.
	DeleteAllVaults(ctx context.Context, owner models.OwnerID) error

	// Preload warms the cache for owner without creating a document.
	Preload(ctx context.Context, owner models.OwnerID) error

	// Failures returns the most recent persist failures, newest first.
	Failures() []models.SaveFailure

	// Close releases the data directory. Pending persists must be drained by
	// the worker pool before Close is called.
	Close() error
}
