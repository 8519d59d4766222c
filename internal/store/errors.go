package store

import "errors"

// Sentinel errors returned by the owner file store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when an owner has no document and the
	// caller did not ask for one to be created.
	ErrDocumentNotFound = errors.New("owner document not found")

	// ErrSaveThrottled is returned by WriteSlot when the previous accepted save
	// of the same vault is younger than the throttle interval. It is a skip,
	// not a failure: the document keeps its last accepted state.
	ErrSaveThrottled = errors.New("save throttled")

	// ErrCorruptDocument is returned when an owner file cannot be parsed.
	ErrCorruptDocument = errors.New("owner document is corrupt")

	// ErrDataDirNotWritable is returned by Open when the data directory cannot
	// be created or written to.
	ErrDataDirNotWritable = errors.New("data directory is not writable")

	// ErrDataDirLocked is returned by Open when another process owns the data
	// directory.
	ErrDataDirLocked = errors.New("data directory is locked by another process")
)

// Persist pipeline errors. They never reach the caller of WriteSlot; they are
// logged and recorded in the failure journal.
var (
	// ErrEmptyTempFile is recorded when the serialised document produced an
	// empty temporary file.
	ErrEmptyTempFile = errors.New("temporary file is empty")

	// ErrRenameFailed is recorded when the temporary file could not replace
	// the live file, even after the retry.
	ErrRenameFailed = errors.New("failed to replace live file")

	// ErrVerificationFailed is recorded when the file written for a non-empty
	// document contains no vault key on re-read.
	ErrVerificationFailed = errors.New("vault data missing after save")
)
