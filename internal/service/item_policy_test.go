package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

func TestItemPolicy_IsBlocked(t *testing.T) {
	modelData := 1001

	tests := []struct {
		name  string
		cfg   config.Policy
		stack models.SlotStack
		want  []string
	}{
		{
			name:  "nothing configured",
			stack: models.SlotStack{Type: "STONE", Amount: 1, MaxStackSize: 64},
		},
		{
			name:  "exact type",
			cfg:   config.Policy{BlockedTypes: []string{"BEDROCK"}},
			stack: models.SlotStack{Type: "BEDROCK"},
			want:  []string{ReasonBlockedType},
		},
		{
			name:  "glob type, case insensitive",
			cfg:   config.Policy{BlockedTypes: []string{"*_shulker_box"}},
			stack: models.SlotStack{Type: "red_shulker_box"},
			want:  []string{ReasonBlockedType},
		},
		{
			name:  "glob does not match",
			cfg:   config.Policy{BlockedTypes: []string{"*_SHULKER_BOX"}},
			stack: models.SlotStack{Type: "CHEST"},
		},
		{
			name:  "invalid pattern skipped",
			cfg:   config.Policy{BlockedTypes: []string{"[", "CHEST"}},
			stack: models.SlotStack{Type: "CHEST"},
			want:  []string{ReasonBlockedType},
		},
		{
			name:  "enchantment",
			cfg:   config.Policy{BlockedEnchantments: []string{"mending"}},
			stack: models.SlotStack{Type: "BOW", Enchantments: map[string]int{"MENDING": 1}},
			want:  []string{ReasonBlockedEnchant},
		},
		{
			name:  "with model data",
			cfg:   config.Policy{BlockWithModelData: true},
			stack: models.SlotStack{Type: "PAPER", ModelData: &modelData},
			want:  []string{ReasonModelData},
		},
		{
			name:  "without model data",
			cfg:   config.Policy{BlockWithoutModelData: true},
			stack: models.SlotStack{Type: "PAPER"},
			want:  []string{ReasonNoModelData},
		},
		{
			name: "several reasons",
			cfg: config.Policy{
				BlockedTypes:        []string{"PAPER"},
				BlockedEnchantments: []string{"LUCK"},
				BlockWithModelData:  true,
			},
			stack: models.SlotStack{Type: "PAPER", ModelData: &modelData, Enchantments: map[string]int{"luck": 3}},
			want:  []string{ReasonModelData, ReasonBlockedType, ReasonBlockedEnchant},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := NewItemPolicy(tt.cfg, logger.Nop())
			assert.Equal(t, tt.want, p.IsBlocked(context.Background(), tt.stack))
		})
	}
}
