// Package schedule holds the agmd annotation grammar, the relative
// date-range query grammar, and the overlap predicate that joins them.
package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/utfq/agmd/internal/domain"
)

var (
	bareDateRe  = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	componentRe = regexp.MustCompile(`(\w+)=(\d{4})-(\d{2})-(\d{2})`)
)

// ParseAnnotation parses the body that followed an "agmd:" marker into a
// schedule interval. Two surface forms are accepted:
//
//   - a bare date ("2025-12-01", possibly with surrounding text) yields a
//     single-day interval;
//   - ";"-separated key=YYYY-MM-DD components ("start=...;due=...")
//     yield the corresponding bounds. Unrecognized keys are validated and
//     ignored; a repeated key lets the later occurrence win.
//
// The bare form only applies to bodies without any "=", so a key=value body
// is never misread through its embedded date. Component parsing is
// all-or-nothing: one bad component (or one impossible calendar date) fails
// the whole parse, returning nil. A body with zero recognized keys parses to
// the open "always active" interval.
func ParseAnnotation(raw string) *domain.ScheduleInterval {
	if !strings.Contains(raw, "=") {
		if m := bareDateRe.FindStringSubmatch(raw); m != nil {
			d, ok := makeDate(m[1], m[2], m[3])
			if !ok {
				return nil
			}
			return &domain.ScheduleInterval{Start: &d, Due: &d}
		}
	}

	var interval domain.ScheduleInterval
	for _, component := range strings.Split(raw, ";") {
		if component == "" {
			continue
		}
		m := componentRe.FindStringSubmatch(component)
		if m == nil {
			return nil
		}
		d, ok := makeDate(m[2], m[3], m[4])
		if !ok {
			return nil
		}
		switch m[1] {
		case "start":
			interval.Start = &d
		case "due":
			interval.Due = &d
		}
	}
	return &interval
}

// makeDate builds a midnight-UTC date and rejects values that time.Date
// would silently normalize (month 13, day 32, ...).
func makeDate(ys, ms, ds string) (time.Time, bool) {
	y, _ := strconv.Atoi(ys)
	m, _ := strconv.Atoi(ms)
	d, _ := strconv.Atoi(ds)
	t := domain.Date(y, time.Month(m), d)
	ty, tm, td := t.Date()
	if ty != y || int(tm) != m || td != d {
		return time.Time{}, false
	}
	return t, true
}
