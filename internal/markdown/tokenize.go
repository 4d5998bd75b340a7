package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parser is configured once; the TaskList extension is what produces the
// checkbox nodes that become EventTaskListMarker.
var parser = goldmark.New(goldmark.WithExtensions(extension.TaskList))

// Tokenize parses a markdown document and flattens its tree into the
// structural event stream the extractor consumes. List items and links map
// to paired start/end events, text runs and task checkboxes map to single
// events, and every other node kind is passed over (its text children still
// surface as EventText).
func Tokenize(source []byte) []Event {
	doc := parser.Parser().Parse(text.NewReader(source))

	var events []Event
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.ListItem:
			if entering {
				events = append(events, Event{Kind: EventItemStart})
			} else {
				events = append(events, Event{Kind: EventItemEnd})
			}
		case *ast.Link:
			if entering {
				events = append(events, Event{Kind: EventLinkStart, Destination: string(node.Destination)})
			} else {
				events = append(events, Event{Kind: EventLinkEnd})
			}
		case *ast.Text:
			if entering {
				events = append(events, Event{Kind: EventText, Text: string(node.Segment.Value(source))})
			}
		case *ast.String:
			if entering {
				events = append(events, Event{Kind: EventText, Text: string(node.Value)})
			}
		case *east.TaskCheckBox:
			if entering {
				events = append(events, Event{Kind: EventTaskListMarker, Checked: node.IsChecked})
			}
		}
		return ast.WalkContinue, nil
	})
	return events
}
