package store

import (
	"time"

	"github.com/spf13/afero"
)

// Option customises a file store created by [Open].
type Option func(*fileStore)

// WithFs replaces the operating-system filesystem. The data directory lock is
// only taken on the real filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *fileStore) {
		s.fs = fs
	}
}

// WithClock replaces time.Now for throttling and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *fileStore) {
		s.now = now
	}
}
