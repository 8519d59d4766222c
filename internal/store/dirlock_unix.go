//go:build !windows

package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// lockFile takes a non-blocking fcntl write lock on f.
func lockFile(f *os.File) error {
	flock := &syscall.Flock_t{
		Type:   syscall.F_WRLCK,
		Whence: int16(io.SeekStart),
	}

	err := syscall.FcntlFlock(f.Fd(), syscall.F_SETLK, flock)
	if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EACCES) {
		return fmt.Errorf("%w: %s", ErrDataDirLocked, f.Name())
	}
	return err
}

func unlockFile(f *os.File) error {
	flock := &syscall.Flock_t{
		Type:   syscall.F_UNLCK,
		Whence: int16(io.SeekStart),
	}

	return syscall.FcntlFlock(f.Fd(), syscall.F_SETLK, flock)
}
