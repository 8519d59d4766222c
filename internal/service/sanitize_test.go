package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-keeper/models"
)

func TestSanitize(t *testing.T) {
	modelData := 3
	raw := []*models.SlotStack{
		{Type: "STONE", Amount: 0, MaxStackSize: 64},
		nil,
		{Type: "ENDER_PEARL", Amount: 40, MaxStackSize: 16},
		{Type: "DIRT", Amount: 12, MaxStackSize: 64, ModelData: &modelData, Meta: map[string]string{"lore": "x"}},
		{Type: "BROKEN", Amount: -5, MaxStackSize: 0},
	}

	out := Sanitize(raw)

	require.Equal(t, len(raw), out.Len())

	tests := []struct {
		slot   int
		amount int
		empty  bool
	}{
		{slot: 0, amount: 1},
		{slot: 1, empty: true},
		{slot: 2, amount: 16},
		{slot: 3, amount: 12},
		{slot: 4, amount: 1},
	}
	for _, tt := range tests {
		s, ok := out.Slot(tt.slot)
		if tt.empty {
			assert.False(t, ok, "slot %d", tt.slot)
			continue
		}
		require.True(t, ok, "slot %d", tt.slot)
		assert.Equal(t, tt.amount, s.Amount, "slot %d", tt.slot)
		assert.Equal(t, raw[tt.slot].Type, s.Type)
	}

	assert.Equal(t, 0, raw[0].Amount, "input untouched")
	assert.Equal(t, 40, raw[2].Amount, "input untouched")

	s, _ := out.Slot(3)
	require.NotNil(t, s.ModelData)
	assert.Equal(t, 3, *s.ModelData)
	*s.ModelData = 9
	assert.Equal(t, 3, modelData, "snapshot shares no memory with input")
}

func TestSanitize_Empty(t *testing.T) {
	assert.Zero(t, Sanitize(nil).Len())
	assert.Equal(t, 9, Sanitize(make([]*models.SlotStack, 9)).Len())
	assert.Zero(t, Sanitize(make([]*models.SlotStack, 9)).Occupied())
}

func TestClampAmount(t *testing.T) {
	tests := []struct {
		amount, max, want int
	}{
		{amount: 5, max: 64, want: 5},
		{amount: 0, max: 64, want: 1},
		{amount: -1, max: 64, want: 1},
		{amount: 65, max: 64, want: 64},
		{amount: 3, max: 1, want: 1},
		{amount: 3, max: 0, want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampAmount(tt.amount, tt.max), "clamp(%d, %d)", tt.amount, tt.max)
	}
}
