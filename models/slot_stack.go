// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// SlotStack is the content of one occupied container slot.
//
// Item semantics (what a type is, how big its stacks may grow) belong to the
// host; the store only relies on Amount and MaxStackSize and treats the rest
// as opaque payload that must survive a round trip untouched.
type SlotStack struct {
	// Type is the host item type name, e.g. "DIAMOND_SWORD".
	Type string `json:"type"`

	// Amount is the number of items in the stack. Persisted stacks always
	// satisfy 1 <= Amount <= MaxStackSize.
	Amount int `json:"amount"`

	// MaxStackSize is the largest Amount the host allows for Type.
	MaxStackSize int `json:"max_stack_size"`

	// ModelData is the custom model data id, nil when the item has none.
	ModelData *int `json:"model_data,omitempty"`

	// Enchantments maps enchantment name to level.
	Enchantments map[string]int `json:"enchantments,omitempty"`

	// Meta carries any other host metadata (display name, lore, nbt...).
	Meta map[string]string `json:"meta,omitempty"`
}

// Clone returns a deep copy; the live stack may still be visible to the host
// while a copy is being sanitised.
func (s SlotStack) Clone() SlotStack {
	c := s
	if s.ModelData != nil {
		v := *s.ModelData
		c.ModelData = &v
	}
	c.Enchantments = maps.Clone(s.Enchantments)
	c.Meta = maps.Clone(s.Meta)
	return c
}

// IsSimilar reports whether two stacks may be merged: everything but Amount
// must match.
func (s SlotStack) IsSimilar(o SlotStack) bool {
	if s.Type != o.Type || s.MaxStackSize != o.MaxStackSize {
		return false
	}
	if (s.ModelData == nil) != (o.ModelData == nil) {
		return false
	}
	if s.ModelData != nil && *s.ModelData != *o.ModelData {
		return false
	}
	return maps.Equal(s.Enchantments, o.Enchantments) && maps.Equal(s.Meta, o.Meta)
}

// Equal reports whether two stacks are similar and have the same amount.
func (s SlotStack) Equal(o SlotStack) bool {
	return s.Amount == o.Amount && s.IsSimilar(o)
}

// HasModelData reports whether the stack carries custom model data.
func (s SlotStack) HasModelData() bool {
	return s.ModelData != nil
}
