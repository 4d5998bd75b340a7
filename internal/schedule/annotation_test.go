package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utfq/agmd/internal/domain"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := domain.Date(y, m, d)
	return &t
}

func TestParseAnnotation_BareDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"plain", "2025-12-01"},
		{"embedded in text", "release 2025-12-01 party"},
		{"first of several wins", "2025-12-01 2026-01-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAnnotation(tt.raw)
			require.NotNil(t, got)
			assert.Equal(t, datePtr(2025, time.December, 1), got.Start)
			assert.Equal(t, datePtr(2025, time.December, 1), got.Due)
			assert.True(t, got.SingleDay())
		})
	}
}

func TestParseAnnotation_KeyValue(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		start *time.Time
		due   *time.Time
	}{
		{"start and due", "start=2025-11-30;due=2025-12-20", datePtr(2025, time.November, 30), datePtr(2025, time.December, 20)},
		{"due only", "due=2025-12-30", nil, datePtr(2025, time.December, 30)},
		{"start only", "start=2025-11-30", datePtr(2025, time.November, 30), nil},
		{"order independent", "due=2025-12-20;start=2025-11-30", datePtr(2025, time.November, 30), datePtr(2025, time.December, 20)},
		{"later duplicate wins", "due=2025-12-20;due=2025-12-25", nil, datePtr(2025, time.December, 25)},
		{"unknown key ignored", "start=2025-11-30;until=2025-12-31", datePtr(2025, time.November, 30), nil},
		{"trailing separator tolerated", "start=2025-11-30;", datePtr(2025, time.November, 30), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAnnotation(tt.raw)
			require.NotNil(t, got)
			assert.Equal(t, tt.start, got.Start)
			assert.Equal(t, tt.due, got.Due)
		})
	}
}

func TestParseAnnotation_EmptyBodyIsAlwaysActive(t *testing.T) {
	// A body with zero recognized keys is the degenerate open interval,
	// not a failure.
	got := ParseAnnotation("")
	require.NotNil(t, got)
	assert.True(t, got.Open())
}

func TestParseAnnotation_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid month", "start=2025-13-01"},
		{"invalid day", "due=2025-02-30"},
		{"invalid bare date", "2025-13-01"},
		{"garbage component", "start=2025-11-30;whenever"},
		{"no date at all", "soon"},
		{"all-or-nothing discards partial", "due=2025-12-20;start=oops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseAnnotation(tt.raw))
		})
	}
}
