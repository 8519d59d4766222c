// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// ReleaseResult tells the caller of [Registry.Release] what happened.
type ReleaseResult int

const (
	// ReleaseNoView means the session had no open view, or its vault was
	// already resolved by someone else.
	ReleaseNoView ReleaseResult = iota
	// ReleaseDeferred means other sessions still view the vault.
	ReleaseDeferred
	// ReleaseCommitted means the session was the last viewer and the commit
	// succeeded.
	ReleaseCommitted
	// ReleaseFailed means the session was the last viewer but the commit
	// failed; the live container is kept for the next open.
	ReleaseFailed
)

func (r ReleaseResult) String() string {
	switch r {
	case ReleaseNoView:
		return "no-view"
	case ReleaseDeferred:
		return "deferred"
	case ReleaseCommitted:
		return "committed"
	case ReleaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("ReleaseResult(%d)", int(r))
	}
}

// Registry maps sessions to the vault they view and vaults to their single
// live container.
//
// Every change to the two tables happens under one mutex, so removing a
// session's view and deciding whether it was the last viewer is atomic: two
// sessions can never both be last, and an open never observes a container
// that is halfway through its final commit.
type Registry struct {
	mu     sync.Mutex
	views  map[models.SessionID]models.SessionViewInfo
	shared map[models.VaultIdentity]*models.Container
	// generations change whenever a shared entry is dropped; an open that
	// loaded during that time must load again.
	generation      map[models.VaultIdentity]uint64
	ownerGeneration map[models.OwnerID]uint64

	loader ContainerLoader
	logger *logger.Logger
}

// NewRegistry returns an empty registry loading containers through loader.
func NewRegistry(loader ContainerLoader, log *logger.Logger) *Registry {
	return &Registry{
		views:           make(map[models.SessionID]models.SessionViewInfo),
		shared:          make(map[models.VaultIdentity]*models.Container),
		generation:      make(map[models.VaultIdentity]uint64),
		ownerGeneration: make(map[models.OwnerID]uint64),
		loader:          loader,
		logger:          log.Component("session-registry"),
	}
}

// OpenView attaches session to the live container of vault, loading it when
// nobody views the vault. Opening the vault the session already views returns
// the same container.
func (r *Registry) OpenView(ctx context.Context, session models.SessionID, vault models.VaultIdentity, size int) (*models.Container, error) {
	for {
		r.mu.Lock()
		if c, ok, err := r.attachLocked(session, vault); ok || err != nil {
			r.mu.Unlock()
			return c, err
		}
		gen := r.generationLocked(vault)
		r.mu.Unlock()

		loaded, err := r.loader.LoadContainer(ctx, vault, size)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadFailed, vault, err)
		}

		r.mu.Lock()
		if r.generationLocked(vault) != gen {
			// the vault was committed or invalidated while loading
			r.mu.Unlock()
			continue
		}
		c, ok, err := r.attachLocked(session, vault)
		if !ok && err == nil {
			r.shared[vault] = loaded
			c, _, err = r.attachLocked(session, vault)
		}
		r.mu.Unlock()

		return c, err
	}
}

// attachLocked attaches session to an existing shared container. ok is false
// when the vault has no live container yet.
func (r *Registry) attachLocked(session models.SessionID, vault models.VaultIdentity) (*models.Container, bool, error) {
	if info, exists := r.views[session]; exists && info.Vault != vault {
		if prev := r.shared[info.Vault]; prev != nil && prev.HasViewer(session) {
			return nil, false, fmt.Errorf("%w: %s", ErrSessionHasView, info.Vault)
		}
	}

	c, ok := r.shared[vault]
	if !ok {
		return nil, false, nil
	}

	c.AddViewer(session)
	r.views[session] = models.SessionViewInfo{Session: session, Vault: vault}
	return c, true, nil
}

// CurrentView returns the view of session.
func (r *Registry) CurrentView(session models.SessionID) (models.SessionViewInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.views[session]
	return info, ok
}

// Container returns the live container of the vault session views.
func (r *Registry) Container(session models.SessionID) (*models.Container, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.views[session]
	if !ok {
		return nil, false
	}
	c, ok := r.shared[info.Vault]
	if !ok || !c.HasViewer(session) {
		return nil, false
	}
	return c, true
}

// CloseView removes the view of session without saving and detaches it from
// the live container. It is idempotent.
func (r *Registry) CloseView(session models.SessionID) (models.SessionViewInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.views[session]
	if !ok {
		return models.SessionViewInfo{}, false
	}
	delete(r.views, session)
	if c := r.shared[info.Vault]; c != nil {
		c.RemoveViewer(session)
	}
	return info, true
}

// Forget drops everything known about session. It is called when the session
// leaves for good.
func (r *Registry) Forget(session models.SessionID) {
	r.CloseView(session)
}

// Live returns the live container of vault, whether or not anybody is
// attached to it.
func (r *Registry) Live(vault models.VaultIdentity) (*models.Container, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.shared[vault]
	return c, ok
}

// ViewerCount returns the number of sessions attached to the live container
// of vault.
func (r *Registry) ViewerCount(vault models.VaultIdentity) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c := r.shared[vault]; c != nil {
		return c.ViewerCount()
	}
	return 0
}

// Release resolves the view of session.
//
// The view is removed and the session detached. If other sessions still view
// the vault, the view info is put back so a later notification can retry, and
// ReleaseDeferred is returned. Otherwise commit runs with the registry locked;
// on success the shared entry is dropped. On failure the detached container
// stays registered so the next open resumes the unsaved contents.
func (r *Registry) Release(session models.SessionID, commit CommitFunc) (ReleaseResult, models.SessionViewInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.views[session]
	if !ok {
		return ReleaseNoView, info, nil
	}
	delete(r.views, session)

	c := r.shared[info.Vault]
	if c == nil {
		r.logger.Debug().
			Str("session", session.String()).
			Str("vault", info.Vault.String()).
			Msg("view has no live container, already resolved")
		return ReleaseNoView, info, nil
	}

	c.RemoveViewer(session)
	if c.ViewerCount() > 0 {
		r.views[session] = info
		return ReleaseDeferred, info, nil
	}

	if err := commit(c); err != nil {
		return ReleaseFailed, info, err
	}

	r.dropLocked(info.Vault)
	return ReleaseCommitted, info, nil
}

// Invalidate drops the live container of vault, e.g. after the vault was
// deleted. Sessions still pointing at it resolve to ReleaseNoView.
func (r *Registry) Invalidate(vault models.VaultIdentity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.shared[vault]; ok {
		r.logger.Info().Str("vault", vault.String()).Msg("live container invalidated")
	}
	r.dropLocked(vault)
}

// InvalidateOwner drops every live container of owner.
func (r *Registry) InvalidateOwner(owner models.OwnerID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for vault := range r.shared {
		if vault.Owner == owner {
			delete(r.shared, vault)
		}
	}
	r.ownerGeneration[owner]++
	r.logger.Info().Str("owner", owner.String()).Msg("live containers of owner invalidated")
}

func (r *Registry) dropLocked(vault models.VaultIdentity) {
	delete(r.shared, vault)
	r.generation[vault]++
}

type loadEpoch struct {
	vault, owner uint64
}

func (r *Registry) generationLocked(vault models.VaultIdentity) loadEpoch {
	return loadEpoch{vault: r.generation[vault], owner: r.ownerGeneration[vault.Owner]}
}

// Stats returns the number of open views and live containers.
func (r *Registry) Stats() (views, containers int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.views), len(r.shared)
}
