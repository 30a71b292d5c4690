package sample

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// Op identifies the file step that failed.
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

const (
	// LockSuffix names the sidecar file locked while a sample is written.
	LockSuffix = ".lock"

	// lockRetryDelay is how often a busy sample file lock is retried.
	lockRetryDelay = 50 * time.Millisecond
)

// ErrLocked is wrapped by a write FileError when the sample file lock could
// not be acquired before the context was done.
var ErrLocked = errors.New("sample file is locked by another process")

// FileError reports a failure reading the env file or writing the sample file.
type FileError struct {
	Op   Op
	Path string
	Err  error
}

func (e *FileError) Error() string {
	switch e.Op {
	case OpRead:
		return fmt.Sprintf("could not read env file %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("cannot write sample file %s: %v", e.Path, e.Err)
	}
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ReadEnvFile reads the source env file.
func ReadEnvFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Op: OpRead, Path: path, Err: err}
	}
	return string(data), nil
}

// WriteSampleFile replaces path with content. The content goes to a
// temporary file in the same directory, which is renamed over path while a
// lock on path+LockSuffix is held, so readers never see a partial sample.
// The parent directory must already exist.
func WriteSampleFile(ctx context.Context, path, content string) error {
	lockPath := path + LockSuffix
	lock := flock.New(lockPath)
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("%w: %w", ErrLocked, err)
		}
		return &FileError{Op: OpWrite, Path: path, Err: err}
	}
	if !locked {
		return &FileError{Op: OpWrite, Path: path, Err: ErrLocked}
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	if err := writeAndRename(path, content); err != nil {
		return &FileError{Op: OpWrite, Path: path, Err: err}
	}
	return nil
}

func writeAndRename(path, content string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	// No-op once renamed.
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// ScrubFile reads envFile, renders its sample and writes it to sampleFile.
func ScrubFile(ctx context.Context, envFile, sampleFile string, overrides map[string]string) (*Result, error) {
	source, err := ReadEnvFile(envFile)
	if err != nil {
		return nil, err
	}

	result := Render(source, overrides)

	if err := WriteSampleFile(ctx, sampleFile, result.Text); err != nil {
		return nil, err
	}
	return result, nil
}
