package markdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/utfq/agmd/internal/domain"
	"github.com/utfq/agmd/internal/schedule"
)

// ErrInvalidStream reports a tokenizer contract violation: item or link
// events did not balance. Unlike an unparseable annotation this is not a
// per-task condition, the whole document result is unusable.
var ErrInvalidStream = errors.New("malformed markdown event stream")

// annotationMarker splits a link destination into "ignored" and "annotation
// body". Case-sensitive, no escaping.
const annotationMarker = "agmd:"

type frameKind int

const (
	frameItem frameKind = iota
	// frameAnnotationLink masks the top of the stack while inside an
	// annotation link, so the link's own label text never reaches the
	// enclosing item's display text.
	frameAnnotationLink
)

type frame struct {
	kind       frameKind
	checked    *bool
	annotation *string
	text       strings.Builder
}

// Extract tokenizes a document and collects its annotated tasks.
func Extract(source []byte) ([]domain.Task, error) {
	return ExtractTasks(Tokenize(source))
}

// ExtractTasks reassembles annotated task-list items from a structural
// event stream. Items may nest, so an explicit stack keeps each item's text
// separate from its ancestors'. An item is emitted only when it carried both
// an annotation link and a task-list marker: a plain list item with an
// annotation is a non-task entry and is dropped, and an item without any
// annotation is not tracked at all. Annotation bodies that fail to parse
// still emit their task, with a nil schedule and the raw body preserved.
func ExtractTasks(events []Event) ([]domain.Task, error) {
	var tasks []domain.Task
	var stack []*frame

	top := func() *frame {
		if len(stack) == 0 {
			return nil
		}
		return stack[len(stack)-1]
	}

	for _, ev := range events {
		switch ev.Kind {
		case EventItemStart:
			stack = append(stack, &frame{kind: frameItem})

		case EventItemEnd:
			f := top()
			if f == nil || f.kind != frameItem {
				return nil, fmt.Errorf("item end without matching item start: %w", ErrInvalidStream)
			}
			stack = stack[:len(stack)-1]
			if f.annotation == nil {
				continue // plain list item, not tracked
			}
			if f.checked == nil {
				continue // annotated but no task marker: non-task entry
			}
			tasks = append(tasks, domain.Task{
				Checked:    *f.checked,
				Text:       strings.TrimSpace(f.text.String()),
				Annotation: *f.annotation,
				Schedule:   schedule.ParseAnnotation(*f.annotation),
			})

		case EventTaskListMarker:
			f := top()
			if f == nil || f.kind != frameItem {
				return nil, fmt.Errorf("task marker outside a list item: %w", ErrInvalidStream)
			}
			checked := ev.Checked
			f.checked = &checked

		case EventLinkStart:
			_, body, found := strings.Cut(ev.Destination, annotationMarker)
			if !found {
				break // ordinary link, its label text flows through EventText
			}
			if f := top(); f != nil && f.kind == frameItem {
				f.annotation = &body
				stack = append(stack, &frame{kind: frameAnnotationLink})
			}

		case EventLinkEnd:
			if f := top(); f != nil && f.kind == frameAnnotationLink {
				stack = stack[:len(stack)-1]
			}

		case EventText:
			if f := top(); f != nil && f.kind == frameItem {
				f.text.WriteString(ev.Text)
			}
		}
	}
	return tasks, nil
}
