// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidOwnerID is returned when an owner identity is empty or could
	// escape the data directory once turned into a file name.
	ErrInvalidOwnerID = errors.New("invalid owner id")

	// ErrInvalidVaultNumber is returned for vault numbers below 1.
	ErrInvalidVaultNumber = errors.New("invalid vault number")
)

// OwnerID is the stable identity a persisted vault collection belongs to.
// It is either a player UUID or, for non-player holders, a raw name.
type OwnerID string

// String implements fmt.Stringer.
func (o OwnerID) String() string {
	return string(o)
}

// NormalizeOwnerID turns raw input into the canonical OwnerID used as the
// key for files, locks, caches and throttling.
//
// UUIDs in any accepted textual form are rewritten to the lowercase hyphenated
// form, so "8F1E..." and "8f1e..." address the same file. Anything else is
// kept verbatim after trimming.
func NormalizeOwnerID(raw string) (OwnerID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidOwnerID)
	}

	if id, err := uuid.Parse(raw); err == nil {
		return OwnerID(id.String()), nil
	}

	if strings.ContainsAny(raw, `/\:`) || strings.Contains(raw, "..") || strings.ContainsRune(raw, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidOwnerID, raw)
	}

	return OwnerID(raw), nil
}

// VaultIdentity addresses one vault of one owner. It is comparable and is used
// directly as a map key for locks, throttling and shared views.
type VaultIdentity struct {
	Owner  OwnerID `json:"owner"`
	Number int     `json:"number"`
}

// NewVaultIdentity validates both parts and returns the identity.
func NewVaultIdentity(owner string, number int) (VaultIdentity, error) {
	ownerID, err := NormalizeOwnerID(owner)
	if err != nil {
		return VaultIdentity{}, err
	}
	if number < 1 {
		return VaultIdentity{}, fmt.Errorf("%w: %d", ErrInvalidVaultNumber, number)
	}

	return VaultIdentity{Owner: ownerID, Number: number}, nil
}

// ParseVaultIdentity parses the "owner:number" form produced by String.
// The owner part may not contain ':' itself, which NormalizeOwnerID enforces.
func ParseVaultIdentity(s string) (VaultIdentity, error) {
	idx := strings.LastIndexByte(s, ':')
	if idx < 0 {
		return VaultIdentity{}, fmt.Errorf("%w: missing vault number in %q", ErrInvalidVaultNumber, s)
	}

	number, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return VaultIdentity{}, fmt.Errorf("%w: %q", ErrInvalidVaultNumber, s[idx+1:])
	}

	return NewVaultIdentity(s[:idx], number)
}

// String returns the "owner:number" form.
func (v VaultIdentity) String() string {
	return string(v.Owner) + ":" + strconv.Itoa(v.Number)
}
