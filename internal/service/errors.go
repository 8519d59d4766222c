package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrSharedViewUnresolved is returned by a commit that found viewers still
	// attached to a container it was told to persist.
	ErrSharedViewUnresolved = errors.New("shared view unresolved")
	ErrSavePending          = errors.New("save pending for session")
	ErrNoOpenView           = errors.New("session has no open view")
	ErrVaultNotFound        = errors.New("vault not found")
	ErrUnknownMutationKind  = errors.New("unknown mutation kind")

	ErrInvalidTokenParams = errors.New("invalid params for token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenIsExpired     = errors.New("token is expired")
)
