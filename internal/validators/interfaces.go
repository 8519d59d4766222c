// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks host-bridge requests before they reach the save
// orchestrator.
//
// A [Validator] accepts a request value (or a pointer to one) and an optional
// list of field names restricting which rules run. Every failure wraps
// [ErrInvalidRequest] so transports can map it to a single status.
package validators

import "context"

// Validator validates arbitrary request values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
