// Package output publishes generated files: configuration dumps, alias tables
// and the parameter reference.
//
// Files are written through a temp file in the target directory and renamed
// into place while holding an advisory lock on "<path>.lock", so two builds
// writing the same dump never interleave and readers never see half a file.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// Stdout is the destination name meaning "write to the command's output".
const Stdout = "-"

// lockRetryDelay is how often Acquire polls a lock held by another process.
const lockRetryDelay = 50 * time.Millisecond

// Lock is an advisory inter-process lock guarding one output file.
type Lock struct {
	flock *flock.Flock
	path  string
}

// NewLock returns the lock guarding target. The lock file is target + ".lock".
func NewLock(target string) *Lock {
	path := target + ".lock"
	return &Lock{
		flock: flock.New(path),
		path:  path,
	}
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Acquire blocks until the lock is held or ctx is done.
func (l *Lock) Acquire(ctx context.Context) error {
	locked, err := l.flock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock on %s", l.path)
	}
	return nil
}

// TryAcquire takes the lock if it is free and reports whether it did.
func (l *Lock) TryAcquire() (bool, error) {
	locked, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", l.path, err)
	}
	return locked, nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// WriteFile replaces path with data in one rename. Missing parent
// directories are created. On failure the previous content is untouched.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}
	committed = true
	return nil
}

// Publish writes data to path under its lock.
func Publish(ctx context.Context, path string, data []byte) error {
	lock := NewLock(path)
	if err := lock.Acquire(ctx); err != nil {
		return err
	}
	defer lock.Release()

	return WriteFile(path, data)
}

// Emit sends data to stdout when dest is empty or Stdout, and publishes it
// to the file dest otherwise.
func Emit(ctx context.Context, dest string, stdout io.Writer, data []byte) error {
	if dest == "" || dest == Stdout {
		_, err := stdout.Write(data)
		return err
	}
	return Publish(ctx, dest, data)
}
