package codec

import "errors"

var (
	// ErrCorruptBlob is returned when a stored blob cannot be decoded.
	ErrCorruptBlob = errors.New("corrupt vault blob")

	// ErrUnsupportedVersion is returned for blobs written by a newer format.
	ErrUnsupportedVersion = errors.New("unsupported vault blob version")

	// ErrInvalidSnapshot is returned when a snapshot cannot be encoded.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)
