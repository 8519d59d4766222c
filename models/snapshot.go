// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ContainerSnapshot is an immutable, fixed-length copy of a container's slots.
// A nil slot is empty. The snapshot never shares memory with a live container:
// every accessor hands out copies.
type ContainerSnapshot struct {
	slots []*SlotStack
}

// NewContainerSnapshot copies slots into a new snapshot.
func NewContainerSnapshot(slots []*SlotStack) ContainerSnapshot {
	return ContainerSnapshot{slots: cloneSlots(slots)}
}

// EmptySnapshot returns a snapshot of size empty slots.
func EmptySnapshot(size int) ContainerSnapshot {
	return ContainerSnapshot{slots: make([]*SlotStack, size)}
}

// Len returns the number of slots, empty ones included.
func (c ContainerSnapshot) Len() int {
	return len(c.slots)
}

// Slot returns a copy of the stack at i and whether the slot is occupied.
func (c ContainerSnapshot) Slot(i int) (SlotStack, bool) {
	if i < 0 || i >= len(c.slots) || c.slots[i] == nil {
		return SlotStack{}, false
	}
	return c.slots[i].Clone(), true
}

// Slots returns a deep copy of all slots.
func (c ContainerSnapshot) Slots() []*SlotStack {
	return cloneSlots(c.slots)
}

// Occupied returns the number of non-empty slots.
func (c ContainerSnapshot) Occupied() int {
	n := 0
	for _, s := range c.slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Equal compares two snapshots slot by slot.
func (c ContainerSnapshot) Equal(o ContainerSnapshot) bool {
	if len(c.slots) != len(o.slots) {
		return false
	}
	for i := range c.slots {
		a, b := c.slots[i], o.slots[i]
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && !a.Equal(*b) {
			return false
		}
	}
	return true
}

func cloneSlots(slots []*SlotStack) []*SlotStack {
	out := make([]*SlotStack, len(slots))
	for i, s := range slots {
		if s == nil {
			continue
		}
		c := s.Clone()
		out[i] = &c
	}
	return out
}
