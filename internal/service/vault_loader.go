// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-keeper/internal/codec"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/session"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// vaultLoader builds live containers from stored blobs.
type vaultLoader struct {
	store store.VaultStore
	codec codec.BlobCodec

	defaultSize int

	logger *logger.Logger
}

// NewVaultLoader returns the session.ContainerLoader backed by the store.
func NewVaultLoader(s store.VaultStore, c codec.BlobCodec, defaultSize int, log *logger.Logger) session.ContainerLoader {
	return &vaultLoader{
		store:       s,
		codec:       c,
		defaultSize: defaultSize,
		logger:      log.Component("vault-loader"),
	}
}

// LoadContainer reads vault and returns a container of the requested size.
// Stored contents larger than size are rescued item by item; whatever does not
// fit is dropped and reported.
func (l *vaultLoader) LoadContainer(ctx context.Context, vault models.VaultIdentity, size int) (*models.Container, error) {
	size = normalizeSize(size, l.defaultSize)
	c := models.NewContainer(vault, size)

	blob, ok, err := l.store.ReadSlot(ctx, vault)
	if err != nil {
		return nil, fmt.Errorf("read vault %s: %w", vault, err)
	}
	if !ok {
		return c, nil
	}

	snapshot, err := l.codec.Decode(blob, vault.Owner)
	if err != nil {
		l.logger.Severe().Err(err).Str("vault", vault.String()).Msg("stored vault cannot be decoded")
		return nil, fmt.Errorf("decode vault %s: %w", vault, err)
	}
	if snapshot == nil {
		return c, nil
	}

	if snapshot.Len() <= size {
		c.SetContents(*snapshot)
		return c, nil
	}

	report := Rescue(c, *snapshot)
	l.logger.Warn().
		Str("vault", vault.String()).
		Int("stored_size", snapshot.Len()).
		Int("size", size).
		Int("inserted", report.Inserted).
		Int("dropped", report.Dropped).
		Int("dropped_items", report.DroppedItems).
		Msg("vault is larger than its container, rescued contents")
	return c, nil
}

// Rescue inserts every stack of s into c the way the host adds items to an
// inventory and reports what did not fit.
func Rescue(c *models.Container, s models.ContainerSnapshot) RescueReport {
	var report RescueReport
	for _, stack := range s.Slots() {
		if stack == nil {
			continue
		}
		if left := c.AddItem(*stack); left > 0 {
			report.Dropped++
			report.DroppedItems += left
			continue
		}
		report.Inserted++
	}
	return report
}

func normalizeSize(size, fallback int) int {
	if size <= 0 || size%9 != 0 || size > models.MaxContainerSize {
		return fallback
	}
	return size
}
