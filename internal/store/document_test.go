// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVaultKey(t *testing.T) {
	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{key: "vault1", want: 1, ok: true},
		{key: "vault27", want: 27, ok: true},
		{key: "vault_version_1"},
		{key: "vault0"},
		{key: "vault-3"},
		{key: "owner"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.key, func(t *testing.T) {
			n, ok := parseVaultKey(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestOwnerDocument_MarshalParse(t *testing.T) {
	modified := time.UnixMilli(1767225600123)

	doc := newOwnerDocument("alice")
	doc.Set(2, "YmxvYjI=", modified)
	doc.Set(1, "YmxvYjE=", modified.Add(time.Second))
	doc.extra["legacy"] = "kept"

	data, err := doc.marshal()
	require.NoError(t, err)

	assert.Equal(t, "vault1: YmxvYjE=\n"+
		"vault_version_1: 1767225601123\n"+
		"vault2: YmxvYjI=\n"+
		"vault_version_2: 1767225600123\n"+
		"legacy: kept\n", string(data))

	parsed, err := parseOwnerDocument("alice", data)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, parsed.Numbers())
	e, ok := parsed.Get(2)
	require.True(t, ok)
	assert.Equal(t, "YmxvYjI=", e.Blob)
	assert.True(t, modified.Equal(e.Modified))
	assert.Equal(t, "kept", parsed.extra["legacy"])
}

func TestOwnerDocument_EmptyMarshalIsNotEmptyFile(t *testing.T) {
	data, err := newOwnerDocument("alice").marshal()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.False(t, containsVaultData(data))
}

func TestParseOwnerDocument(t *testing.T) {
	t.Run("empty file", func(t *testing.T) {
		doc, err := parseOwnerDocument("alice", nil)
		require.NoError(t, err)
		assert.Zero(t, doc.Len())
	})

	t.Run("null blob", func(t *testing.T) {
		doc, err := parseOwnerDocument("alice", []byte("vault3:\n"))
		require.NoError(t, err)
		assert.True(t, doc.Has(3))
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := parseOwnerDocument("alice", []byte("vault1: [unterminated"))
		assert.ErrorIs(t, err, ErrCorruptDocument)
	})

	t.Run("blob is not a string", func(t *testing.T) {
		_, err := parseOwnerDocument("alice", []byte("vault1:\n  nested: true\n"))
		assert.ErrorIs(t, err, ErrCorruptDocument)
	})
}

func TestOwnerDocument_Delete(t *testing.T) {
	doc := newOwnerDocument("alice")
	doc.Set(1, "a", time.Now())

	assert.True(t, doc.Delete(1))
	assert.False(t, doc.Delete(1))
	assert.False(t, doc.Has(1))
	assert.Empty(t, doc.Numbers())
}

func TestContainsVaultData(t *testing.T) {
	assert.True(t, containsVaultData([]byte("vault1: abc\n")))
	assert.False(t, containsVaultData([]byte("{}\n")))
	assert.False(t, containsVaultData(nil))
	assert.False(t, containsVaultData([]byte(": : :")))
}
