// Package storage persists scrape results as files and, optionally,
// into a local SQLite archive.
package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors for storage operations.
var (
	// ErrNoVideos indicates an export was requested for an empty record set.
	ErrNoVideos = errors.New("storage: no videos to write")
)

// StorageError wraps storage failures with operation context.
// Use errors.As() to extract it:
//
//	var storErr *storage.StorageError
//	if errors.As(err, &storErr) {
//		fmt.Printf("Failed to %s %s: %v\n", storErr.Op, storErr.Path, storErr.Err)
//	}
type StorageError struct {
	// Op is the operation that failed ("csv", "json", "search", "sqlite").
	Op string
	// Path is the file the operation was writing, if applicable.
	Path string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the storage error.
func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *StorageError) Unwrap() error { return e.Err }
