package schedule

import (
	"time"

	"github.com/utfq/agmd/internal/domain"
)

// Intersects reports whether a task's schedule overlaps the query window.
// Every offset in the query is resolved to an absolute date as today plus
// that many days (negative offsets reach into the past). Open bounds on
// either side impose no constraint, so a fully open schedule matches every
// query and a fully open query matches every schedule. A reversed range or
// a Start > Due schedule degenerates through the same bound comparisons and
// simply matches less (or nothing).
func Intersects(q domain.DateQuery, s domain.ScheduleInterval, today time.Time) bool {
	day := domain.DayOf(today)

	switch q.Kind {
	case domain.QuerySingle:
		return scheduleContains(s, day.AddDate(0, 0, q.Offset))
	case domain.QueryRange:
		var lo, hi *time.Time
		if q.From != nil {
			t := day.AddDate(0, 0, *q.From)
			lo = &t
		}
		if q.To != nil {
			t := day.AddDate(0, 0, *q.To)
			hi = &t
		}
		if hi != nil && s.Start != nil && hi.Before(*s.Start) {
			return false
		}
		if lo != nil && s.Due != nil && s.Due.Before(*lo) {
			return false
		}
		return true
	default:
		return false
	}
}

// scheduleContains reports whether a single day falls inside [Start, Due],
// treating a missing bound as unbounded on that side.
func scheduleContains(s domain.ScheduleInterval, d time.Time) bool {
	if s.Start != nil && d.Before(*s.Start) {
		return false
	}
	if s.Due != nil && d.After(*s.Due) {
		return false
	}
	return true
}
