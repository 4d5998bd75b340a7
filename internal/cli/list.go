package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/utfq/agmd/internal/domain"
	"github.com/utfq/agmd/internal/markdown"
	"github.com/utfq/agmd/internal/repository"
	"github.com/utfq/agmd/internal/scan"
	"github.com/utfq/agmd/internal/schedule"
)

// ListOptions control which extracted tasks survive into the output.
type ListOptions struct {
	// All skips filtering entirely: every annotated task is kept.
	All bool
	// IncludeDone keeps checked-off tasks when filtering.
	IncludeDone bool
	// NoCache bypasses the scan cache for this run.
	NoCache bool
	// Query is the activity window tasks are matched against.
	Query domain.DateQuery
}

// FileTasks groups the surviving tasks of one document, in source order.
type FileTasks struct {
	Path    string
	AbsPath string
	Tasks   []domain.Task
}

// Collect scans root, extracts tasks from every markdown document, and
// returns the per-file groups that still have tasks after filtering. Files
// whose fingerprint matches a cache entry skip extraction; cache failures
// degrade to a re-parse. A tokenizer contract violation in any document
// aborts the whole run.
func (app *App) Collect(ctx context.Context, root string, opts ListOptions) ([]FileTasks, error) {
	docs, err := scan.Scan(root, app.IgnoreName)
	if err != nil {
		return nil, err
	}

	cache := app.Cache
	if opts.NoCache {
		cache = nil
	}

	today := app.today()
	var groups []FileTasks
	keep := make([]string, 0, len(docs))
	for _, doc := range docs {
		keep = append(keep, doc.Path)

		tasks, err := app.documentTasks(ctx, cache, doc)
		if err != nil {
			return nil, fmt.Errorf("extracting tasks from %s: %w", doc.Path, err)
		}

		filtered := filterTasks(tasks, opts, today)
		if len(filtered) == 0 {
			continue
		}
		groups = append(groups, FileTasks{Path: doc.Path, AbsPath: doc.AbsPath, Tasks: filtered})
	}

	if cache != nil {
		// The cache is advisory: a failed prune only leaves stale rows.
		_ = cache.Prune(ctx, keep)
	}
	return groups, nil
}

func (app *App) documentTasks(ctx context.Context, cache repository.TaskCacheRepo, doc scan.Document) ([]domain.Task, error) {
	if cache != nil {
		if tasks, ok, err := cache.Lookup(ctx, doc.Path, doc.ModTime, doc.Size); err == nil && ok {
			return tasks, nil
		}
	}

	tasks, err := markdown.Extract(doc.Content)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		// Best effort, same reasoning as Prune above.
		_ = cache.Store(ctx, doc.Path, doc.ModTime, doc.Size, tasks)
	}
	return tasks, nil
}

// filterTasks applies the completion and date filters. Tasks whose
// annotation never parsed have no schedule to test and are kept, so
// malformed scheduling stays visible instead of silently disappearing.
func filterTasks(tasks []domain.Task, opts ListOptions, today time.Time) []domain.Task {
	if opts.All {
		return tasks
	}
	var out []domain.Task
	for _, t := range tasks {
		if t.Checked && !opts.IncludeDone {
			continue
		}
		if t.Schedule != nil && !schedule.Intersects(opts.Query, *t.Schedule, today) {
			continue
		}
		out = append(out, t)
	}
	return out
}
