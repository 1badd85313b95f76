// Package sink provides workbook destinations.
package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// Lock acquisition defaults, used when the context has no deadline.
const (
	DefaultLockTimeout = 3 * time.Second
	lockRetryInterval  = 100 * time.Millisecond
)

// ErrLocked indicates another process holds the destination lock.
var ErrLocked = errors.New("destination is locked")

// File writes to a temporary file next to its destination and moves it
// into place on Close. A File that received no bytes, or whose writes
// failed, leaves the destination untouched. An exclusive lock on
// "<path>.lock" is held from OpenFile until Close.
type File struct {
	path    string
	tmp     *os.File
	lock    *flock.Flock
	written bool
	failed  bool
	closed  bool
}

// OpenFile locks path and opens a temporary file to write to.
func OpenFile(ctx context.Context, path string) (*File, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultLockTimeout)
		defer cancel()
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", path, ErrLocked)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	return &File{path: path, tmp: tmp, lock: lock}, nil
}

// Path returns the destination path.
func (f *File) Path() string {
	return f.path
}

func (f *File) Write(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}
	n, err := f.tmp.Write(p)
	if n > 0 {
		f.written = true
	}
	if err != nil {
		f.failed = true
	}
	return n, err
}

// Close moves the written file into place and releases the lock. It is
// safe to call more than once.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	defer func() { _ = f.lock.Unlock() }()

	if err := f.tmp.Close(); err != nil {
		_ = os.Remove(f.tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if !f.written || f.failed {
		return os.Remove(f.tmp.Name())
	}
	if err := os.Rename(f.tmp.Name(), f.path); err != nil {
		_ = os.Remove(f.tmp.Name())
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}
