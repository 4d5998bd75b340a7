package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utfq/agmd/internal/domain"
	"github.com/utfq/agmd/internal/schedule"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := domain.Date(y, m, d)
	return &t
}

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		task domain.Task
		want string
	}{
		{
			"single day",
			domain.Task{
				Text:       "Buy milk",
				Annotation: "2025-12-01",
				Schedule:   &domain.ScheduleInterval{Start: datePtr(2025, time.December, 1), Due: datePtr(2025, time.December, 1)},
			},
			"- [ ] Buy milk <agmd:2025-12-01>",
		},
		{
			"start and due",
			domain.Task{
				Checked:    true,
				Text:       "Done",
				Annotation: "start=2025-01-01;due=2025-01-31",
				Schedule:   &domain.ScheduleInterval{Start: datePtr(2025, time.January, 1), Due: datePtr(2025, time.January, 31)},
			},
			"- [x] Done <agmd:start=2025-01-01;due=2025-01-31>",
		},
		{
			"due only",
			domain.Task{
				Text:       "Report",
				Annotation: "due=2025-12-05",
				Schedule:   &domain.ScheduleInterval{Due: datePtr(2025, time.December, 5)},
			},
			"- [ ] Report <agmd:due=2025-12-05>",
		},
		{
			"open interval",
			domain.Task{
				Text:       "Whenever",
				Annotation: "",
				Schedule:   &domain.ScheduleInterval{},
			},
			"- [ ] Whenever <agmd:>",
		},
		{
			"malformed keeps raw body",
			domain.Task{
				Text:       "Vague plans",
				Annotation: "someday",
			},
			"- [ ] Vague plans <agmd:someday>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTask(tt.task))
		})
	}
}

func TestAnnotationBody_RoundTrip(t *testing.T) {
	// Rendering and re-parsing an annotation reproduces the interval.
	tests := []struct {
		name     string
		schedule *domain.ScheduleInterval
	}{
		{"single day", &domain.ScheduleInterval{Start: datePtr(2025, time.December, 1), Due: datePtr(2025, time.December, 1)}},
		{"start and due", &domain.ScheduleInterval{Start: datePtr(2025, time.November, 30), Due: datePtr(2025, time.December, 20)}},
		{"start only", &domain.ScheduleInterval{Start: datePtr(2025, time.November, 30)}},
		{"due only", &domain.ScheduleInterval{Due: datePtr(2025, time.December, 30)}},
		{"open", &domain.ScheduleInterval{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := AnnotationBody(domain.Task{Schedule: tt.schedule})
			got := schedule.ParseAnnotation(body)
			require.NotNil(t, got)
			assert.Equal(t, tt.schedule, got)
		})
	}
}

func TestStyledTask_ContainsContent(t *testing.T) {
	task := domain.Task{Text: "Buy milk", Annotation: "2025-12-01",
		Schedule: &domain.ScheduleInterval{Start: datePtr(2025, time.December, 1), Due: datePtr(2025, time.December, 1)}}
	out := StyledTask(task)
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "agmd:2025-12-01")
}

func TestFileHeader(t *testing.T) {
	plain := FileHeader("notes/inbox.md", "/home/u/notes/inbox.md", false)
	assert.Contains(t, plain, "notes/inbox.md")
	assert.NotContains(t, plain, "\x1b]8;;")

	linked := FileHeader("notes/inbox.md", "/home/u/notes/inbox.md", true)
	assert.Contains(t, linked, "\x1b]8;;file:///home/u/notes/inbox.md\x1b\\")
	assert.Contains(t, linked, "notes/inbox.md")
}
