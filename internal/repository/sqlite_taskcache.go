package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/utfq/agmd/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, path, seq, checked, text, annotation, has_schedule, start_date, due_date`

// SQLiteTaskCacheRepo implements TaskCacheRepo using a SQLite database.
type SQLiteTaskCacheRepo struct {
	db *sql.DB
}

// NewSQLiteTaskCacheRepo creates a new SQLiteTaskCacheRepo.
func NewSQLiteTaskCacheRepo(db *sql.DB) *SQLiteTaskCacheRepo {
	return &SQLiteTaskCacheRepo{db: db}
}

func (r *SQLiteTaskCacheRepo) Lookup(ctx context.Context, path string, mtime time.Time, size int64) ([]domain.Task, bool, error) {
	var storedMtime, storedSize int64
	err := r.db.QueryRowContext(ctx,
		`SELECT mtime_ns, size FROM documents WHERE path = ?`, path,
	).Scan(&storedMtime, &storedSize)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("looking up cached document: %w", err)
	}
	if storedMtime != mtime.UnixNano() || storedSize != size {
		return nil, false, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE path = ? ORDER BY seq`, path)
	if err != nil {
		return nil, false, fmt.Errorf("loading cached tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, false, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating cached tasks: %w", err)
	}
	return tasks, true, nil
}

func (r *SQLiteTaskCacheRepo) Store(ctx context.Context, path string, mtime time.Time, size int64, tasks []domain.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting cache transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE path = ?`, path); err != nil {
		return fmt.Errorf("clearing cached document: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (path, mtime_ns, size, scanned_at) VALUES (?, ?, ?, ?)`,
		path, mtime.UnixNano(), size, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("inserting cached document: %w", err)
	}

	for seq, task := range tasks {
		var start, due interface{}
		hasSchedule := 0
		if task.Schedule != nil {
			hasSchedule = 1
			start = nullableDateToString(task.Schedule.Start)
			due = nullableDateToString(task.Schedule.Due)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(),
			path,
			seq,
			boolToInt(task.Checked),
			task.Text,
			task.Annotation,
			hasSchedule,
			start,
			due,
		); err != nil {
			return fmt.Errorf("inserting cached task: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cache transaction: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteTaskCacheRepo) Prune(ctx context.Context, keep []string) error {
	if len(keep) == 0 {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM documents`); err != nil {
			return fmt.Errorf("pruning cache: %w", err)
		}
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(keep)), ", ")
	args := make([]interface{}, len(keep))
	for i, p := range keep {
		args[i] = p
	}
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE path NOT IN (`+placeholders+`)`, args...); err != nil {
		return fmt.Errorf("pruning cache: %w", err)
	}
	return nil
}

func scanTask(rows *sql.Rows) (domain.Task, error) {
	var (
		id, path, text, annotation string
		seq, checked, hasSchedule  int
		start, due                 sql.NullString
	)
	if err := rows.Scan(&id, &path, &seq, &checked, &text, &annotation, &hasSchedule, &start, &due); err != nil {
		return domain.Task{}, fmt.Errorf("scanning cached task: %w", err)
	}

	task := domain.Task{
		Checked:    intToBool(checked),
		Text:       text,
		Annotation: annotation,
	}
	if intToBool(hasSchedule) {
		task.Schedule = &domain.ScheduleInterval{
			Start: parseNullableDate(start),
			Due:   parseNullableDate(due),
		}
	}
	return task, nil
}
