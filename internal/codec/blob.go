// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// CurrentVersion is the payload version written by [NewBlobCodec].
const CurrentVersion = 1

type payload struct {
	Version int           `json:"v"`
	Size    int           `json:"size"`
	Slots   []payloadSlot `json:"slots"`
}

type payloadSlot struct {
	Index int              `json:"i"`
	Stack models.SlotStack `json:"stack"`
}

type blobCodec struct{}

// NewBlobCodec returns the default [BlobCodec].
func NewBlobCodec() BlobCodec {
	return blobCodec{}
}

func (blobCodec) Encode(s models.ContainerSnapshot, owner models.OwnerID) (string, error) {
	if s.Len() > models.MaxContainerSize {
		return "", fmt.Errorf("%w: owner %s has %d slots", ErrInvalidSnapshot, owner, s.Len())
	}

	p := payload{
		Version: CurrentVersion,
		Size:    s.Len(),
		Slots:   make([]payloadSlot, 0, s.Occupied()),
	}
	for i := 0; i < s.Len(); i++ {
		stack, ok := s.Slot(i)
		if !ok {
			continue
		}
		if stack.Amount < 1 {
			return "", fmt.Errorf("%w: owner %s slot %d has amount %d", ErrInvalidSnapshot, owner, i, stack.Amount)
		}
		p.Slots = append(p.Slots, payloadSlot{Index: i, Stack: stack})
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding vault for owner %s: %w", owner, err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

func (blobCodec) Decode(blob string, owner models.OwnerID) (*models.ContainerSnapshot, error) {
	blob = strings.TrimSpace(blob)
	if blob == "" {
		return nil, nil
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: owner %s: %w", ErrCorruptBlob, owner, err)
	}

	var p payload
	if err = json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: owner %s: %w", ErrCorruptBlob, owner, err)
	}
	if p.Version > CurrentVersion {
		return nil, fmt.Errorf("%w: owner %s: version %d", ErrUnsupportedVersion, owner, p.Version)
	}
	if p.Version < 1 || p.Size < 0 {
		return nil, fmt.Errorf("%w: owner %s: bad header", ErrCorruptBlob, owner)
	}
	if p.Size > models.MaxContainerSize || len(p.Slots) > p.Size {
		return nil, fmt.Errorf("%w: owner %s: size %d with %d slots", ErrCorruptBlob, owner, p.Size, len(p.Slots))
	}

	slots := make([]*models.SlotStack, p.Size)
	for _, s := range p.Slots {
		if s.Index < 0 || s.Index >= p.Size || slots[s.Index] != nil {
			return nil, fmt.Errorf("%w: owner %s: bad slot index %d", ErrCorruptBlob, owner, s.Index)
		}
		stack := s.Stack
		slots[s.Index] = &stack
	}

	snapshot := models.NewContainerSnapshot(slots)
	return &snapshot, nil
}
