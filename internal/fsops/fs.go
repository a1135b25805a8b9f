// Package fsops provides the filesystem operations slap performs.
//
// Every mutation made by the planner goes through the FS interface so that the
// creation order and failure behavior can be exercised in tests without
// touching the real disk.
//
// Key features:
//   - Recursive directory creation
//   - Create-or-truncate file creation
//   - Temp directories and files that are never cleaned up by slap
//   - Testable via the FS interface
package fsops

import (
	"fmt"
	"os"
)

// TempPattern is the name pattern for temp entries created by slap.
// The "*" is replaced by a random string.
const TempPattern = ".tmp*"

// FS provides an abstraction for filesystem operations.
type FS interface {
	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// CreateFile creates path, truncating it if it already exists.
	CreateFile(path string) error

	// MkdirTemp creates a new uniquely named directory in dir and returns its path.
	MkdirTemp(dir, pattern string) (string, error)

	// CreateTemp creates a new uniquely named empty file in dir and returns its path.
	CreateTemp(dir, pattern string) (string, error)

	// IsDir reports whether path currently resolves to a directory.
	IsDir(path string) bool
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// MkdirAll creates a directory and all parent directories.
func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CreateFile creates path, truncating it if it already exists.
// The parent directory must already exist.
func (fs *RealFS) CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	return f.Close()
}

// MkdirTemp creates a new uniquely named directory in dir.
// The directory is left in place; removing it is the caller's business.
func (fs *RealFS) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

// CreateTemp creates a new uniquely named empty file in dir.
// The file is closed and left in place.
func (fs *RealFS) CreateTemp(dir, pattern string) (string, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file %s: %w", name, err)
	}
	return name, nil
}

// IsDir reports whether path currently resolves to a directory.
// Any stat error is treated as "not a directory".
func (fs *RealFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
