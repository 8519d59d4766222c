// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-vault-keeper/internal/codec"
	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/session"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/workers"
	"github.com/MKhiriev/go-vault-keeper/models"
)

type saveOrchestrator struct {
	// registry owns the session views and live containers.
	registry *session.Registry

	// store receives committed blobs.
	store store.VaultStore

	// codec turns sanitised snapshots into blobs.
	codec codec.BlobCodec

	// policy decides which stacks may enter a vault.
	policy ItemPolicy

	// closer closes host views on forced relocation. When nil, the host is
	// only told to close the view.
	closer ViewCloser

	// queue runs cache warm-ups.
	queue workers.JobQueue

	guard       *saveGuard
	defaultSize int

	logger *logger.Logger
}

// OrchestratorDeps groups the collaborators of the save orchestrator.
type OrchestratorDeps struct {
	Registry *session.Registry
	Store    store.VaultStore
	Codec    codec.BlobCodec
	Policy   ItemPolicy
	Closer   ViewCloser
	Queue    workers.JobQueue
}

// NewSaveOrchestrator returns the SaveOrchestrator.
func NewSaveOrchestrator(deps OrchestratorDeps, cfg config.Vaults, log *logger.Logger) SaveOrchestrator {
	return &saveOrchestrator{
		registry:    deps.Registry,
		store:       deps.Store,
		codec:       deps.Codec,
		policy:      deps.Policy,
		closer:      deps.Closer,
		queue:       deps.Queue,
		guard:       newSaveGuard(),
		defaultSize: cfg.DefaultSize,
		logger:      log.Component("save-orchestrator"),
	}
}

func (o *saveOrchestrator) ViewOpened(ctx context.Context, s models.SessionID, vault models.VaultIdentity, size int) (*models.Container, error) {
	if o.guard.state(s) == SaveStateSavePending {
		return nil, fmt.Errorf("%w: %s", ErrSavePending, s)
	}

	c, err := o.registry.OpenView(ctx, s, vault, normalizeSize(size, o.defaultSize))
	if err != nil {
		o.logger.Err(err).
			Str("session", s.String()).
			Str("vault", vault.String()).
			Msg("failed to open view")
		return nil, err
	}

	o.logger.Debug().
		Str("session", s.String()).
		Str("vault", vault.String()).
		Int("viewers", c.ViewerCount()).
		Msg("view opened")
	return c, nil
}

func (o *saveOrchestrator) SaveState(s models.SessionID) SaveState {
	return o.guard.state(s)
}

// TrySave resolves the view of s. The guard is released on every path, a
// panicking commit included.
//
// Only in-memory work runs with the registry locked: the commit stages the
// blob in the cached owner document, and the persist is queued after the
// registry is released.
func (o *saveOrchestrator) TrySave(ctx context.Context, s models.SessionID) (outcome SaveOutcome) {
	if !o.guard.begin(s) {
		o.logger.Debug().Str("session", s.String()).Msg("save already in progress, skipped")
		return OutcomeDuplicate
	}
	defer func() {
		if o.guard.end(s) {
			o.registry.Forget(s)
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error().
				Str("session", s.String()).
				Any("panic", r).
				Msg("save panicked")
			outcome = OutcomeFailed
		}
	}()

	if info, ok := o.registry.CurrentView(s); ok {
		o.warm(ctx, info.Vault.Owner)
	}

	res, info, err := o.registry.Release(s, func(c *models.Container) error {
		return o.commit(ctx, c)
	})

	log := o.logger.With().Str("session", s.String()).Str("vault", info.Vault.String()).Logger()
	switch res {
	case session.ReleaseNoView:
		log.Debug().Msg("nothing to save")
		return OutcomeNoView
	case session.ReleaseDeferred:
		log.Debug().Msg("vault still viewed by others, save deferred")
		return OutcomeDeferred
	case session.ReleaseCommitted:
		if err = o.store.Flush(ctx, info.Vault.Owner); err != nil {
			log.Error().Err(err).Msg("failed to queue vault persist")
			return OutcomeFailed
		}
		log.Debug().Msg("vault committed")
		return OutcomeCommitted
	}

	if errors.Is(err, store.ErrSaveThrottled) {
		log.Debug().Msg("vault saved too recently, skipped")
		return OutcomeThrottled
	}
	log.Error().Err(err).Msg("failed to commit vault")
	return OutcomeFailed
}

// warm loads the owner document so the commit does not read the disk with the
// registry locked. Errors surface again from the commit.
func (o *saveOrchestrator) warm(ctx context.Context, owner models.OwnerID) {
	if _, err := o.store.GetDocument(ctx, owner, true); err != nil {
		o.logger.Debug().Err(err).Str("owner", owner.String()).Msg("owner document not warmed")
	}
}

// commit stages c in the owner document. It runs with the registry locked,
// after the last viewer was detached.
func (o *saveOrchestrator) commit(ctx context.Context, c *models.Container) error {
	vault := c.Vault()
	if n := c.ViewerCount(); n > 0 {
		o.logger.Severe().
			Str("vault", vault.String()).
			Int("viewers", n).
			Msg("refusing to commit a container that is still viewed")
		return fmt.Errorf("%w: %s has %d viewers", ErrSharedViewUnresolved, vault, n)
	}

	blob, err := o.codec.Encode(Sanitize(c.Contents()), vault.Owner)
	if err != nil {
		return fmt.Errorf("encode %s: %w", vault, err)
	}
	return o.store.StageSlot(ctx, vault, blob)
}

func (o *saveOrchestrator) SessionClosedView(ctx context.Context, s models.SessionID) SaveOutcome {
	return o.TrySave(ctx, s)
}

// SessionDisconnected saves and then forgets s, so a deferred view does not
// outlive its session. When a save of s is already running, s is forgotten
// once that save has resolved the view.
func (o *saveOrchestrator) SessionDisconnected(ctx context.Context, s models.SessionID) SaveOutcome {
	outcome := o.TrySave(ctx, s)
	if outcome == OutcomeDuplicate && o.guard.forgetOnEnd(s) {
		return outcome
	}
	o.registry.Forget(s)
	return outcome
}

func (o *saveOrchestrator) SessionEntityRemoved(ctx context.Context, s models.SessionID) SaveOutcome {
	return o.TrySave(ctx, s)
}

func (o *saveOrchestrator) SessionForcedRelocation(ctx context.Context, s models.SessionID, cause RelocationCause) (bool, error) {
	if cause == RelocationUnknown || cause == "" {
		return false, nil
	}
	if _, ok := o.registry.Container(s); !ok {
		return false, nil
	}

	o.logger.Debug().
		Str("session", s.String()).
		Str("cause", string(cause)).
		Msg("closing view on relocation")

	if o.closer == nil {
		// the host closes the view itself and reports it with a close
		// notification, which saves
		return true, nil
	}
	if err := o.closer.CloseView(ctx, s); err != nil {
		return false, fmt.Errorf("close view of %s: %w", s, err)
	}
	return true, nil
}

func (o *saveOrchestrator) SessionJoined(ctx context.Context, s models.SessionID, owner models.OwnerID) error {
	err := o.queue.Submit(ctx, func(jobCtx context.Context) {
		if err := o.store.Preload(jobCtx, owner); err != nil {
			o.logger.Err(err).
				Str("session", s.String()).
				Str("owner", owner.String()).
				Msg("failed to preload vaults")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule preload of %s: %w", owner, err)
	}
	return nil
}

func (o *saveOrchestrator) ViewerInteractedWithEntity(_ context.Context, s models.SessionID, entity EntityKind) Decision {
	if entity != EntityVillager && entity != EntityMinecart {
		return Allow()
	}
	if _, ok := o.registry.Container(s); !ok {
		return Allow()
	}
	return Deny(ReasonVaultOpen)
}

func (o *saveOrchestrator) MutationAttempt(ctx context.Context, a MutationAttempt) Decision {
	if o.guard.state(a.Session) == SaveStateSavePending {
		return Deny(ReasonSavePending)
	}
	if _, ok := o.registry.Container(a.Session); !ok {
		return Deny(ReasonNoView)
	}
	return o.checkPolicy(ctx, a)
}

func (o *saveOrchestrator) checkPolicy(ctx context.Context, a MutationAttempt) Decision {
	if o.policy == nil || models.HasPermission(a.Permissions, models.PermissionBypassBlockedItems) {
		return Allow()
	}

	var reasons []string
	for _, stack := range a.stacks() {
		reasons = appendUnique(reasons, o.policy.IsBlocked(ctx, stack)...)
	}
	if len(reasons) > 0 {
		o.logger.Debug().
			Str("session", a.Session.String()).
			Str("kind", string(a.Kind)).
			Strs("reasons", reasons).
			Msg("mutation denied by item policy")
		return Deny(reasons...)
	}
	return Allow()
}

// Mutate applies an allowed attempt while holding the save guard, so the
// change lands either before a save snapshots the container or not at all.
func (o *saveOrchestrator) Mutate(ctx context.Context, a MutationAttempt) (Decision, error) {
	if _, ok := o.registry.Container(a.Session); !ok {
		return Deny(ReasonNoView), nil
	}
	if d := o.checkPolicy(ctx, a); !d.Allowed {
		return d, nil
	}

	var (
		viewed = true
		err    error
	)
	ran := o.guard.whileIdle(a.Session, func() {
		c, ok := o.registry.Container(a.Session)
		if !ok {
			viewed = false
			return
		}
		err = c.SetSlot(a.Slot, a.Stack)
	})
	switch {
	case !ran:
		return Deny(ReasonSavePending), nil
	case !viewed:
		return Deny(ReasonNoView), nil
	case err != nil:
		return Decision{}, err
	}
	return Allow(), nil
}

func appendUnique(dst []string, items ...string) []string {
	for _, it := range items {
		if !slices.Contains(dst, it) {
			dst = append(dst, it)
		}
	}
	return dst
}
