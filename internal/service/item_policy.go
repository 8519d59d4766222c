package service

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// configItemPolicy blocks stacks by type pattern, enchantment and custom
// model data, as configured.
type configItemPolicy struct {
	typePatterns []string
	enchantments map[string]struct{}

	blockWithModelData    bool
	blockWithoutModelData bool

	logger *logger.Logger
}

// NewItemPolicy returns the ItemPolicy described by cfg. Type patterns use
// glob syntax ("*_SHULKER_BOX") and are matched case-insensitively; invalid
// patterns are logged and skipped.
func NewItemPolicy(cfg config.Policy, log *logger.Logger) ItemPolicy {
	log = log.Component("item-policy")

	p := &configItemPolicy{
		enchantments:          make(map[string]struct{}, len(cfg.BlockedEnchantments)),
		blockWithModelData:    cfg.BlockWithModelData,
		blockWithoutModelData: cfg.BlockWithoutModelData,
		logger:                log,
	}
	for _, pattern := range cfg.BlockedTypes {
		pattern = strings.ToUpper(strings.TrimSpace(pattern))
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			log.Warn().Str("pattern", pattern).Msg("invalid blocked type pattern, skipped")
			continue
		}
		p.typePatterns = append(p.typePatterns, pattern)
	}
	for _, e := range cfg.BlockedEnchantments {
		if e = strings.ToUpper(strings.TrimSpace(e)); e != "" {
			p.enchantments[e] = struct{}{}
		}
	}
	return p
}

func (p *configItemPolicy) IsBlocked(_ context.Context, stack models.SlotStack) []string {
	var reasons []string

	if stack.HasModelData() && p.blockWithModelData {
		reasons = append(reasons, ReasonModelData)
	}
	if !stack.HasModelData() && p.blockWithoutModelData {
		reasons = append(reasons, ReasonNoModelData)
	}

	itemType := strings.ToUpper(stack.Type)
	for _, pattern := range p.typePatterns {
		if ok, _ := doublestar.Match(pattern, itemType); ok {
			reasons = append(reasons, ReasonBlockedType)
			break
		}
	}

	for name := range stack.Enchantments {
		if _, ok := p.enchantments[strings.ToUpper(name)]; ok {
			reasons = append(reasons, ReasonBlockedEnchant)
			break
		}
	}

	return reasons
}
