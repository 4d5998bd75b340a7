// Package formatter renders tasks and per-file headers for the terminal.
package formatter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/utfq/agmd/internal/domain"
)

// AnnotationBody renders the canonical annotation body for a task: a bare
// date for single-day intervals, start=/due= components otherwise, the raw
// body verbatim when the annotation never parsed, and an empty body for the
// open interval. Re-parsing the result yields the same interval.
func AnnotationBody(t domain.Task) string {
	if t.Schedule == nil {
		return t.Annotation
	}
	s := *t.Schedule
	switch {
	case s.Open():
		return ""
	case s.SingleDay():
		return s.Start.Format(domain.DateLayout)
	default:
		var parts []string
		if s.Start != nil {
			parts = append(parts, "start="+s.Start.Format(domain.DateLayout))
		}
		if s.Due != nil {
			parts = append(parts, "due="+s.Due.Format(domain.DateLayout))
		}
		return strings.Join(parts, ";")
	}
}

// FormatTask renders the plain one-line display form of a task:
//
//	- [x] text <agmd:...>
func FormatTask(t domain.Task) string {
	mark := " "
	if t.Checked {
		mark = "x"
	}
	return fmt.Sprintf("- [%s] %s <agmd:%s>", mark, t.Text, AnnotationBody(t))
}

// StyledTask renders FormatTask with terminal colors: green checkmarks,
// dimmed annotations, malformed annotations flagged in red.
func StyledTask(t domain.Task) string {
	mark := StyleYellow.Render("[ ]")
	if t.Checked {
		mark = StyleGreen.Render("[x]")
	}
	annotation := Dim("<agmd:" + AnnotationBody(t) + ">")
	if t.Schedule == nil {
		annotation = StyleRed.Render("<agmd:" + t.Annotation + ">")
	}
	return fmt.Sprintf("- %s %s %s", mark, StyleFg.Render(t.Text), annotation)
}

// FileHeader renders the "==== path ====" group header. When hyperlink is
// set the path is wrapped in an OSC 8 terminal hyperlink to absPath so
// supporting terminals make it clickable.
func FileHeader(path, absPath string, hyperlink bool) string {
	label := path
	if hyperlink {
		u := url.URL{Scheme: "file", Path: absPath}
		label = Hyperlink(u.String(), path)
	}
	return StyleHeader.Render("==== ") + label + StyleHeader.Render(" ====")
}

// Hyperlink wraps text in an OSC 8 escape sequence pointing at target.
func Hyperlink(target, text string) string {
	return "\x1b]8;;" + target + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
