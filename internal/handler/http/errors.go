// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request has no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMissingScope is returned when the token lacks the permission a route
	// requires.
	ErrMissingScope = errors.New("token lacks required scope")

	// ErrInvalidJSON is returned for request bodies that do not decode.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrEmptySessionID is returned when the session path parameter is blank.
	ErrEmptySessionID = errors.New("empty session id")
)
