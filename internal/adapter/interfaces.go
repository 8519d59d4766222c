// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the administrative API of a running vaultd.
//
// [AdminAdapter] is what vaultctl uses; [NewHTTPAdminAdapter] is its REST
// implementation. Non-2xx responses are mapped to the sentinel errors of
// errors.go so callers can branch with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/admin_adapter_mock.go -package=mock

// AdminAdapter is a client of the vaultd admin API.
type AdminAdapter interface {
	// SetToken stores the bearer token attached to every authorized request.
	SetToken(token string)

	// Token returns the stored bearer token.
	Token() string

	// Version returns the version reported by the server. It needs no token.
	Version(ctx context.Context) (string, error)

	// ListVaults returns the vault numbers stored for owner.
	ListVaults(ctx context.Context, owner string) ([]int, error)

	// ShowVault returns the contents of one vault. A missing vault is not an
	// error: the response has Exists set to false.
	ShowVault(ctx context.Context, owner string, number int) (models.VaultResponse, error)

	// DeleteVault removes one vault.
	DeleteVault(ctx context.Context, owner string, number int) error

	// DeleteAllVaults removes every vault of owner.
	DeleteAllVaults(ctx context.Context, owner string) error

	// Failures returns the recent persistence failures.
	Failures(ctx context.Context) ([]models.SaveFailure, error)
}
