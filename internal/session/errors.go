package session

import "errors"

var (
	// ErrSessionHasView is returned by OpenView when the session is still
	// attached to a different vault.
	ErrSessionHasView = errors.New("session already has a vault open")

	// ErrLoadFailed wraps loader failures.
	ErrLoadFailed = errors.New("failed to load vault container")
)
