package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// SaveOrchestrator reacts to session lifecycle notifications and decides when
// the contents of a shared vault view are committed to the store.
//
// Every lifecycle notification that may end a view ends in TrySave, which is
// guarded per session: concurrent or re-entrant notifications for the same
// session collapse into one save.
type SaveOrchestrator interface {
	// ViewOpened attaches session to the live container of vault, loading it
	// when nobody views the vault yet. A size that is not a positive multiple
	// of 9 falls back to the configured default.
	ViewOpened(ctx context.Context, session models.SessionID, vault models.VaultIdentity, size int) (*models.Container, error)

	TrySave(ctx context.Context, session models.SessionID) SaveOutcome
	SaveState(session models.SessionID) SaveState

	SessionClosedView(ctx context.Context, session models.SessionID) SaveOutcome
	SessionDisconnected(ctx context.Context, session models.SessionID) SaveOutcome
	SessionEntityRemoved(ctx context.Context, session models.SessionID) SaveOutcome
	// SessionForcedRelocation asks the host to close the view of session and
	// reports whether a close was requested. It never saves: the close
	// notification that follows does. Moves with an unknown cause are ignored.
	SessionForcedRelocation(ctx context.Context, session models.SessionID, cause RelocationCause) (bool, error)
	// SessionJoined warms the document cache of owner in the background.
	SessionJoined(ctx context.Context, session models.SessionID, owner models.OwnerID) error

	ViewerInteractedWithEntity(ctx context.Context, session models.SessionID, entity EntityKind) Decision
	MutationAttempt(ctx context.Context, attempt MutationAttempt) Decision
	// Mutate gates attempt like MutationAttempt and, when allowed, applies it
	// to the live container.
	Mutate(ctx context.Context, attempt MutationAttempt) (Decision, error)
}

// VaultService is the administrative view of stored vaults.
type VaultService interface {
	ListVaults(ctx context.Context, owner models.OwnerID) ([]int, error)
	VaultExists(ctx context.Context, vault models.VaultIdentity) (bool, error)
	// PeekVault returns the contents of vault without opening a view. A live
	// container wins over the stored blob.
	PeekVault(ctx context.Context, vault models.VaultIdentity) (models.ContainerSnapshot, error)
	DeleteVault(ctx context.Context, vault models.VaultIdentity) error
	DeleteAllVaults(ctx context.Context, owner models.OwnerID) error
	Failures(ctx context.Context) []models.SaveFailure
}

// AuthService issues and checks administrative API tokens.
type AuthService interface {
	CreateToken(ctx context.Context, subject string, scopes []string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ItemPolicy decides whether a stack may enter a vault. An empty result
// allows it.
type ItemPolicy interface {
	IsBlocked(ctx context.Context, stack models.SlotStack) []string
}

// ViewCloser closes the host side of a session's view. Closing normally leads
// to a SessionClosedView notification.
type ViewCloser interface {
	CloseView(ctx context.Context, session models.SessionID) error
}
