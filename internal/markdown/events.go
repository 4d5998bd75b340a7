// Package markdown turns markdown documents into agenda tasks: a tokenizer
// adapter flattens the parse tree into structural events, and an explicit
// frame stack reassembles task-list items (with their agmd annotations)
// from that stream.
package markdown

// EventKind identifies one structural event in the flattened stream.
type EventKind int

const (
	EventItemStart EventKind = iota
	EventItemEnd
	EventLinkStart
	EventLinkEnd
	EventText
	EventTaskListMarker
)

// Event is one entry of the structural event stream the extractor consumes.
// Only the field matching the kind is meaningful.
type Event struct {
	Kind        EventKind
	Destination string // EventLinkStart
	Text        string // EventText
	Checked     bool   // EventTaskListMarker
}
