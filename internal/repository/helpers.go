package repository

import (
	"database/sql"
	"time"

	"github.com/utfq/agmd/internal/domain"
)

// parseNullableDate parses a sql.NullString calendar date into a *time.Time.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableDate(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(domain.DateLayout, s.String)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// nullableDateToString converts a *time.Time to a value suitable for SQLite
// storage. Returns nil (SQL NULL) if the pointer is nil.
func nullableDateToString(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(domain.DateLayout)
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
