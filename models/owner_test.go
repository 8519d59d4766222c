// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOwnerID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    OwnerID
		wantErr bool
	}{
		{name: "uuid is lowercased", raw: "8F1E6B2C-1D2E-4F3A-9B8C-7D6E5F4A3B2C", want: "8f1e6b2c-1d2e-4f3a-9b8c-7d6e5f4a3b2c"},
		{name: "uuid without hyphens", raw: "8f1e6b2c1d2e4f3a9b8c7d6e5f4a3b2c", want: "8f1e6b2c-1d2e-4f3a-9b8c-7d6e5f4a3b2c"},
		{name: "plain name kept", raw: "  Steve ", want: "Steve"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "path separator", raw: "../etc/passwd", wantErr: true},
		{name: "backslash", raw: `a\b`, wantErr: true},
		{name: "colon", raw: "a:b", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeOwnerID(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidOwnerID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVaultIdentity_StringAndParse(t *testing.T) {
	id, err := NewVaultIdentity("Steve", 3)
	require.NoError(t, err)
	assert.Equal(t, "Steve:3", id.String())

	parsed, err := ParseVaultIdentity(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestNewVaultIdentity_RejectsNonPositiveNumber(t *testing.T) {
	_, err := NewVaultIdentity("Steve", 0)
	require.ErrorIs(t, err, ErrInvalidVaultNumber)
}

func TestParseVaultIdentity_Malformed(t *testing.T) {
	_, err := ParseVaultIdentity("Steve")
	require.ErrorIs(t, err, ErrInvalidVaultNumber)

	_, err = ParseVaultIdentity("Steve:x")
	require.ErrorIs(t, err, ErrInvalidVaultNumber)
}

func TestHasPermission_AdminImpliesEverything(t *testing.T) {
	assert.True(t, HasPermission([]string{PermissionAdmin}, PermissionDeleteAll))
	assert.True(t, HasPermission([]string{PermissionDelete}, PermissionDelete))
	assert.False(t, HasPermission([]string{PermissionDelete}, PermissionDeleteAll))
	assert.False(t, HasPermission(nil, PermissionCommandsUse))
}
