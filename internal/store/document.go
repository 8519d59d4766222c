// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// Keys of an owner file. Every vault N is stored as "vaultN" (the blob) next
// to "vault_version_N" (last modification, unix milliseconds).
const (
	vaultKeyPrefix   = "vault"
	versionKeyPrefix = "vault_version_"
)

func vaultKey(number int) string {
	return vaultKeyPrefix + strconv.Itoa(number)
}

func versionKey(number int) string {
	return versionKeyPrefix + strconv.Itoa(number)
}

// parseVaultKey returns N for keys of the form "vaultN".
func parseVaultKey(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, vaultKeyPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// VaultEntry is one stored vault.
type VaultEntry struct {
	Blob     string
	Modified time.Time
}

// OwnerDocument is the in-memory form of one owner file. It is shared by all
// sessions of the owner and by the persist workers, so it carries its own
// lock. Keys the store does not understand are kept and written back.
type OwnerDocument struct {
	mu     sync.RWMutex
	owner  models.OwnerID
	vaults map[int]VaultEntry
	extra  map[string]any
}

func newOwnerDocument(owner models.OwnerID) *OwnerDocument {
	return &OwnerDocument{
		owner:  owner,
		vaults: make(map[int]VaultEntry),
		extra:  make(map[string]any),
	}
}

// Owner returns the owner the document belongs to.
func (d *OwnerDocument) Owner() models.OwnerID {
	return d.owner
}

// Get returns the entry of vault number.
func (d *OwnerDocument) Get(number int) (VaultEntry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	e, ok := d.vaults[number]
	return e, ok
}

// Has reports whether vault number exists.
func (d *OwnerDocument) Has(number int) bool {
	_, ok := d.Get(number)
	return ok
}

// Set stores blob as vault number.
func (d *OwnerDocument) Set(number int, blob string, modified time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.vaults[number] = VaultEntry{Blob: blob, Modified: modified}
}

// Delete removes vault number and reports whether it existed.
func (d *OwnerDocument) Delete(number int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.vaults[number]
	delete(d.vaults, number)
	return ok
}

// Numbers returns the vault numbers in ascending order.
func (d *OwnerDocument) Numbers() []int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	numbers := make([]int, 0, len(d.vaults))
	for n := range d.vaults {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)
	return numbers
}

// Len returns the number of vaults.
func (d *OwnerDocument) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.vaults)
}

// marshal renders the document as YAML with a stable key order: vaults by
// number, then unknown keys alphabetically.
func (d *OwnerDocument) marshal() ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	root := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value any) error {
		var v yaml.Node
		if err := v.Encode(value); err != nil {
			return fmt.Errorf("encoding %q: %w", key, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&v,
		)
		return nil
	}

	numbers := make([]int, 0, len(d.vaults))
	for n := range d.vaults {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)

	for _, n := range numbers {
		e := d.vaults[n]
		if err := add(vaultKey(n), e.Blob); err != nil {
			return nil, err
		}
		if err := add(versionKey(n), e.Modified.UnixMilli()); err != nil {
			return nil, err
		}
	}

	extraKeys := make([]string, 0, len(d.extra))
	for k := range d.extra {
		extraKeys = append(extraKeys, k)
	}
	slices.Sort(extraKeys)
	for _, k := range extraKeys {
		if err := add(k, d.extra[k]); err != nil {
			return nil, err
		}
	}

	return yaml.Marshal(root)
}

// parseOwnerDocument decodes the content of an owner file. An empty file is
// an empty document.
func parseOwnerDocument(owner models.OwnerID, data []byte) (*OwnerDocument, error) {
	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: owner %s: %w", ErrCorruptDocument, owner, err)
	}

	doc := newOwnerDocument(owner)
	versions := make(map[int]int64)

	for key, value := range raw {
		if rest, ok := strings.CutPrefix(key, versionKeyPrefix); ok {
			n, err := strconv.Atoi(rest)
			ms, isInt := value.(int)
			if err == nil && isInt {
				versions[n] = int64(ms)
				continue
			}
		}

		n, ok := parseVaultKey(key)
		if !ok {
			doc.extra[key] = value
			continue
		}

		switch blob := value.(type) {
		case string:
			doc.vaults[n] = VaultEntry{Blob: blob}
		case nil:
			doc.vaults[n] = VaultEntry{}
		default:
			return nil, fmt.Errorf("%w: owner %s: key %s is not a string", ErrCorruptDocument, owner, key)
		}
	}

	for n, ms := range versions {
		if e, ok := doc.vaults[n]; ok {
			e.Modified = time.UnixMilli(ms)
			doc.vaults[n] = e
		}
	}

	return doc, nil
}

// containsVaultData reports whether raw YAML has at least one key that looks
// like vault data. It is the post-write verification.
func containsVaultData(data []byte) bool {
	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return false
	}
	for key := range raw {
		if strings.HasPrefix(key, vaultKeyPrefix) {
			return true
		}
	}
	return false
}
