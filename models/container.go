// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"sync"
)

// MaxContainerSize is the largest vault a host can display: six rows of nine.
const MaxContainerSize = 54

// ErrSlotOutOfRange is returned by slot mutations with an index outside the
// container.
var ErrSlotOutOfRange = errors.New("slot index out of range")

// Container is the live, in-memory handle of an open vault. All sessions that
// view the same VaultIdentity share exactly one Container.
//
// Container is safe for concurrent use. Readers always receive copies, so a
// caller can never mutate the slots behind the container's back.
type Container struct {
	mu      sync.Mutex
	vault   VaultIdentity
	slots   []*SlotStack
	viewers map[SessionID]struct{}
}

// NewContainer returns an empty container with size slots.
func NewContainer(vault VaultIdentity, size int) *Container {
	return &Container{
		vault:   vault,
		slots:   make([]*SlotStack, size),
		viewers: make(map[SessionID]struct{}),
	}
}

// Vault returns the identity this container was opened for.
func (c *Container) Vault() VaultIdentity {
	return c.vault
}

// Size returns the number of slots.
func (c *Container) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slots)
}

// Contents returns a deep copy of the current slots.
func (c *Container) Contents() []*SlotStack {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneSlots(c.slots)
}

// Snapshot returns the current slots as an immutable snapshot, unsanitised.
func (c *Container) Snapshot() ContainerSnapshot {
	return ContainerSnapshot{slots: c.Contents()}
}

// SetContents replaces every slot with the snapshot's content. Slots beyond
// the container size are ignored; missing slots become empty.
func (c *Container) SetContents(s ContainerSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.slots {
		c.slots[i] = nil
		if stack, ok := s.Slot(i); ok {
			c.slots[i] = &stack
		}
	}
}

// SetSlot stores a copy of stack at index i; a nil stack empties the slot.
func (c *Container) SetSlot(i int, stack *SlotStack) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= len(c.slots) {
		return fmt.Errorf("%w: %d (size %d)", ErrSlotOutOfRange, i, len(c.slots))
	}
	if stack == nil {
		c.slots[i] = nil
		return nil
	}
	cp := stack.Clone()
	c.slots[i] = &cp
	return nil
}

// AddItem inserts stack the way a host inventory does: first topping up
// similar partial stacks, then filling the first empty slots. It returns the
// amount that did not fit.
func (c *Container) AddItem(stack SlotStack) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	remaining := stack.Amount
	maxSize := stack.MaxStackSize
	if maxSize < 1 {
		maxSize = 1
	}

	for _, s := range c.slots {
		if remaining == 0 {
			return 0
		}
		if s == nil || !s.IsSimilar(stack) || s.Amount >= maxSize {
			continue
		}
		moved := min(maxSize-s.Amount, remaining)
		s.Amount += moved
		remaining -= moved
	}

	for i, s := range c.slots {
		if remaining == 0 {
			return 0
		}
		if s != nil {
			continue
		}
		placed := stack.Clone()
		placed.Amount = min(maxSize, remaining)
		c.slots[i] = &placed
		remaining -= placed.Amount
	}

	return remaining
}

// AddViewer attaches a session to the container.
func (c *Container) AddViewer(session SessionID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewers[session] = struct{}{}
}

// RemoveViewer detaches a session. Detaching an unknown session is a no-op.
func (c *Container) RemoveViewer(session SessionID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.viewers, session)
}

// HasViewer reports whether session is attached.
func (c *Container) HasViewer(session SessionID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.viewers[session]
	return ok
}

// ViewerCount returns the number of attached sessions.
func (c *Container) ViewerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.viewers)
}
