// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stack(typ string, amount, maxSize int) *SlotStack {
	return &SlotStack{Type: typ, Amount: amount, MaxStackSize: maxSize}
}

func TestContainer_ContentsAreCopies(t *testing.T) {
	c := NewContainer(VaultIdentity{Owner: "Steve", Number: 1}, 9)
	require.NoError(t, c.SetSlot(0, stack("STONE", 10, 64)))

	contents := c.Contents()
	contents[0].Amount = 1

	again := c.Contents()
	assert.Equal(t, 10, again[0].Amount)
}

func TestContainer_SetSlotOutOfRange(t *testing.T) {
	c := NewContainer(VaultIdentity{Owner: "Steve", Number: 1}, 9)
	require.ErrorIs(t, c.SetSlot(9, stack("STONE", 1, 64)), ErrSlotOutOfRange)
	require.ErrorIs(t, c.SetSlot(-1, nil), ErrSlotOutOfRange)
}

func TestContainer_AddItemMergesThenFills(t *testing.T) {
	c := NewContainer(VaultIdentity{Owner: "Steve", Number: 1}, 2)
	require.NoError(t, c.SetSlot(1, stack("STONE", 60, 64)))

	left := c.AddItem(*stack("STONE", 10, 64))
	assert.Zero(t, left)

	contents := c.Contents()
	require.NotNil(t, contents[0])
	assert.Equal(t, 6, contents[0].Amount)
	assert.Equal(t, 64, contents[1].Amount)
}

func TestContainer_AddItemReportsLeftover(t *testing.T) {
	c := NewContainer(VaultIdentity{Owner: "Steve", Number: 1}, 1)

	left := c.AddItem(*stack("STONE", 100, 64))
	assert.Equal(t, 36, left)
}

func TestContainer_SetContentsTruncatesAndPads(t *testing.T) {
	c := NewContainer(VaultIdentity{Owner: "Steve", Number: 1}, 2)
	c.SetContents(NewContainerSnapshot([]*SlotStack{stack("A", 1, 1), stack("B", 1, 1), stack("C", 1, 1)}))

	contents := c.Contents()
	require.Len(t, contents, 2)
	assert.Equal(t, "A", contents[0].Type)
	assert.Equal(t, "B", contents[1].Type)

	c.SetContents(EmptySnapshot(1))
	contents = c.Contents()
	assert.Nil(t, contents[0])
	assert.Nil(t, contents[1])
}

func TestContainer_Viewers(t *testing.T) {
	c := NewContainer(VaultIdentity{Owner: "Steve", Number: 1}, 9)
	c.AddViewer("a")
	c.AddViewer("b")
	c.AddViewer("a")
	assert.Equal(t, 2, c.ViewerCount())
	assert.True(t, c.HasViewer("a"))

	c.RemoveViewer("a")
	c.RemoveViewer("nobody")
	assert.Equal(t, 1, c.ViewerCount())
	assert.False(t, c.HasViewer("a"))
}

func TestContainerSnapshot_ImmutableAndEqual(t *testing.T) {
	md := 7
	src := []*SlotStack{{Type: "SWORD", Amount: 1, MaxStackSize: 1, ModelData: &md, Enchantments: map[string]int{"sharpness": 5}}, nil}
	snap := NewContainerSnapshot(src)

	src[0].Enchantments["sharpness"] = 1
	*src[0].ModelData = 9

	got, ok := snap.Slot(0)
	require.True(t, ok)
	assert.Equal(t, 5, got.Enchantments["sharpness"])
	assert.Equal(t, 7, *got.ModelData)

	_, ok = snap.Slot(1)
	assert.False(t, ok)
	assert.Equal(t, 1, snap.Occupied())
	assert.Equal(t, 2, snap.Len())

	assert.True(t, snap.Equal(NewContainerSnapshot(snap.Slots())))
	assert.False(t, snap.Equal(EmptySnapshot(2)))
}
