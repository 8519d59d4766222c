// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vaultd handlers and middleware.
//
// The Msg* constants are the log messages written when a request fails.
// Keeping them in one place keeps the wording consistent across the API.
package app

const (
	// MsgInvalidOwner is logged when the owner path parameter or body field
	// cannot be normalized.
	MsgInvalidOwner = "invalid owner"

	// MsgInvalidVault is logged when an owner/number pair is not a valid vault.
	MsgInvalidVault = "invalid vault"

	// MsgInvalidSession is logged when the session path parameter is blank.
	MsgInvalidSession = "invalid session"

	// MsgInvalidRequest is logged when a host-bridge body fails validation.
	MsgInvalidRequest = "invalid request"

	// MsgInvalidMutation is logged for an unknown mutation kind.
	MsgInvalidMutation = "invalid mutation"

	MsgListVaultsFailed  = "error listing vaults"
	MsgReadVaultFailed   = "error reading vault"
	MsgDeleteVaultFailed = "error deleting vault"
	MsgDeleteAllFailed   = "error deleting vaults"

	// MsgPreloadFailed is logged when the preload job could not be queued,
	// usually because the persist pipeline is shutting down.
	MsgPreloadFailed = "error scheduling preload"

	MsgOpenViewFailed = "error opening view"
	MsgMutateFailed   = "error applying mutation"
	MsgCloseFailed    = "error closing view"
)
