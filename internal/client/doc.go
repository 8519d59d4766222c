// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements vaultctl, the operator command line for a running
// vaultd.
//
// Commands mint admin tokens locally and call the admin API through an
// [adapter.AdminAdapter]. Results are printed as indented JSON.
package client
