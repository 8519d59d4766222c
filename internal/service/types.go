// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// SaveOutcome reports what a save attempt did.
type SaveOutcome int

const (
	// OutcomeDuplicate means another save of the same session was in progress.
	OutcomeDuplicate SaveOutcome = iota
	// OutcomeNoView means the session had nothing to save.
	OutcomeNoView
	// OutcomeDeferred means other sessions still view the vault; the last of
	// them will save.
	OutcomeDeferred
	// OutcomeCommitted means the contents were handed to the store.
	OutcomeCommitted
	// OutcomeThrottled means the vault was saved too recently and the write
	// was skipped. The live contents are kept for the next open.
	OutcomeThrottled
	// OutcomeFailed means the commit failed and was logged.
	OutcomeFailed
)

func (o SaveOutcome) String() string {
	switch o {
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeNoView:
		return "no-view"
	case OutcomeDeferred:
		return "deferred"
	case OutcomeCommitted:
		return "committed"
	case OutcomeThrottled:
		return "throttled"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("SaveOutcome(%d)", int(o))
	}
}

// SaveState is the per-session save guard.
type SaveState int

const (
	SaveStateIdle SaveState = iota
	SaveStateSavePending
)

func (s SaveState) String() string {
	if s == SaveStateSavePending {
		return "save-pending"
	}
	return "idle"
}

// MutationKind names a host action that changes vault contents.
type MutationKind string

const (
	MutationPlace       MutationKind = "place"
	MutationDrag        MutationKind = "drag"
	MutationSwapOffhand MutationKind = "swap-offhand"
	MutationHotbarSwap  MutationKind = "hotbar-swap"
)

// ParseMutationKind validates a kind received over the wire.
func ParseMutationKind(s string) (MutationKind, error) {
	switch k := MutationKind(s); k {
	case MutationPlace, MutationDrag, MutationSwapOffhand, MutationHotbarSwap:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMutationKind, s)
	}
}

// MutationAttempt describes one attempted change to the vault a session views.
type MutationAttempt struct {
	Session models.SessionID
	Kind    MutationKind

	// Slot is the vault slot written to, Stack the resulting content. A nil
	// Stack clears the slot.
	Slot  int
	Stack *models.SlotStack

	// Involved lists every other stack the action moves into the vault, e.g.
	// the hotbar item of a swap or the cursor of a drag.
	Involved []models.SlotStack

	// Permissions granted to the acting session.
	Permissions []string
}

// stacks returns every stack the attempt would move into the vault.
func (a MutationAttempt) stacks() []models.SlotStack {
	out := make([]models.SlotStack, 0, len(a.Involved)+1)
	if a.Stack != nil {
		out = append(out, *a.Stack)
	}
	return append(out, a.Involved...)
}

// Denial reasons reported in a Decision.
const (
	ReasonSavePending    = "save-pending"
	ReasonNoView         = "no-view"
	ReasonVaultOpen      = "vault-open"
	ReasonModelData      = "has-model-data"
	ReasonNoModelData    = "has-no-model-data"
	ReasonBlockedType    = "blocked-type"
	ReasonBlockedEnchant = "blocked-enchantment"
)

// Decision answers an advisory question of the host.
type Decision struct {
	Allowed bool
	Reasons []string
}

// Allow is the positive Decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a negative Decision carrying reasons.
func Deny(reasons ...string) Decision {
	return Decision{Allowed: false, Reasons: reasons}
}

// Response converts the decision for the wire.
func (d Decision) Response() models.DecisionResponse {
	return models.DecisionResponse{Allowed: d.Allowed, Reasons: d.Reasons}
}

// RelocationCause tells why the host moved a session.
type RelocationCause string

// RelocationUnknown is reported for moves the host could not attribute, for
// instance the ones it performs itself while a view opens; they must not close
// the view.
const RelocationUnknown RelocationCause = "unknown"

// EntityKind is the kind of a foreign entity a viewer interacts with.
type EntityKind string

const (
	EntityVillager EntityKind = "villager"
	EntityMinecart EntityKind = "minecart"
)

// RescueReport summarises a lossy rescue of oversized stored contents.
type RescueReport struct {
	// Inserted counts stacks that fit completely.
	Inserted int
	// Dropped counts stacks that did not fit, completely or in part.
	Dropped int
	// DroppedItems is the total amount lost.
	DroppedItems int
}
