package domain

import "time"

// DateLayout is the calendar-date form used everywhere a date crosses a
// boundary: annotation bodies, rendered task lines, cache rows.
const DateLayout = "2006-01-02"

// ScheduleInterval is the inclusive [Start, Due] window a task is active in.
// A nil bound is open: no Start means "active since forever", no Due means
// "active indefinitely". Start > Due is representable and means an empty
// window, never an error.
type ScheduleInterval struct {
	Start *time.Time
	Due   *time.Time
}

// SingleDay reports whether the interval covers exactly one day.
func (s ScheduleInterval) SingleDay() bool {
	return s.Start != nil && s.Due != nil && s.Start.Equal(*s.Due)
}

// Open reports whether the interval has no bounds at all.
func (s ScheduleInterval) Open() bool {
	return s.Start == nil && s.Due == nil
}

// Task is one discovered to-do line. Annotation holds the raw body that
// followed the "agmd:" marker; Schedule is nil when that body did not parse,
// so malformed scheduling stays visible instead of silently vanishing.
type Task struct {
	Checked    bool
	Text       string
	Annotation string
	Schedule   *ScheduleInterval
}

type QueryKind string

const (
	QuerySingle QueryKind = "single"
	QueryRange  QueryKind = "range"
)

// DateQuery is a user-supplied activity filter, relative to "today" at
// evaluation time. A single query names one day offset; a range query has
// two optionally-open offset bounds.
type DateQuery struct {
	Kind   QueryKind
	Offset int  // QuerySingle only
	From   *int // QueryRange, nil = open lower bound
	To     *int // QueryRange, nil = open upper bound
}

// SingleQuery builds a one-day query at the given offset from today.
func SingleQuery(offset int) DateQuery {
	return DateQuery{Kind: QuerySingle, Offset: offset}
}

// RangeQuery builds an offset-range query; either bound may be nil (open).
func RangeQuery(from, to *int) DateQuery {
	return DateQuery{Kind: QueryRange, From: from, To: to}
}

// DefaultQuery is the filter used when the caller supplies none: today.
func DefaultQuery() DateQuery {
	return SingleQuery(0)
}

// Date builds a calendar date at midnight UTC, the normal form for every
// date held in a ScheduleInterval.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayOf truncates a timestamp to its calendar date in normal form.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}
