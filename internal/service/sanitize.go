package service

import "github.com/MKhiriev/go-vault-keeper/models"

// Sanitize copies raw into a snapshot fit for persisting. The result has the
// same length as raw; every stack is cloned and its amount clamped into
// [1, MaxStackSize]. raw is not modified.
func Sanitize(raw []*models.SlotStack) models.ContainerSnapshot {
	out := make([]*models.SlotStack, len(raw))
	for i, s := range raw {
		if s == nil {
			continue
		}
		c := s.Clone()
		c.Amount = clampAmount(c.Amount, c.MaxStackSize)
		out[i] = &c
	}
	return models.NewContainerSnapshot(out)
}

func clampAmount(amount, maxStack int) int {
	maxStack = max(maxStack, 1)
	return min(max(amount, 1), maxStack)
}
