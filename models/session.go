// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionID identifies one viewing session, normally one connected player.
type SessionID string

// String implements fmt.Stringer.
func (s SessionID) String() string {
	return string(s)
}

// SessionViewInfo binds a session to the vault it currently has open.
type SessionViewInfo struct {
	Session SessionID     `json:"session"`
	Vault   VaultIdentity `json:"vault"`
}
