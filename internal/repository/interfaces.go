// Package repository persists per-document extraction results so unchanged
// files skip the tokenize-and-extract pass on later runs.
package repository

import (
	"context"
	"time"

	"github.com/utfq/agmd/internal/domain"
)

// TaskCacheRepo is the scan cache. Entries are keyed by document path and
// validated against the file's modification time and size; a stale entry is
// treated as a miss, never an error.
type TaskCacheRepo interface {
	// Lookup returns the cached tasks for path when the stored fingerprint
	// still matches, with ok=false on any miss.
	Lookup(ctx context.Context, path string, mtime time.Time, size int64) (tasks []domain.Task, ok bool, err error)

	// Store replaces the cached tasks for path under the given fingerprint.
	Store(ctx context.Context, path string, mtime time.Time, size int64, tasks []domain.Task) error

	// Prune drops every cached document whose path is not in keep.
	Prune(ctx context.Context, keep []string) error
}
