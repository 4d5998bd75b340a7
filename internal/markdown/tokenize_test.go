package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestTokenize_TaskItemEvents(t *testing.T) {
	events := Tokenize([]byte("- [x] Ship it [s](agmd:due=2025-12-05)\n"))

	assert.Equal(t, []EventKind{
		EventItemStart,
		EventTaskListMarker,
		EventText,
		EventLinkStart,
		EventText,
		EventLinkEnd,
		EventItemEnd,
	}, kinds(events))

	var marker, link *Event
	for i := range events {
		switch events[i].Kind {
		case EventTaskListMarker:
			marker = &events[i]
		case EventLinkStart:
			link = &events[i]
		}
	}
	require.NotNil(t, marker)
	assert.True(t, marker.Checked)
	require.NotNil(t, link)
	assert.Equal(t, "agmd:due=2025-12-05", link.Destination)
}

func TestTokenize_NonListContentHasNoItemEvents(t *testing.T) {
	events := Tokenize([]byte("# Heading\n\nJust a paragraph with [a link](https://example.com).\n"))

	for _, ev := range events {
		assert.NotEqual(t, EventItemStart, ev.Kind)
		assert.NotEqual(t, EventItemEnd, ev.Kind)
		assert.NotEqual(t, EventTaskListMarker, ev.Kind)
	}
}

func TestTokenize_EmptyDocument(t *testing.T) {
	assert.Empty(t, Tokenize(nil))
}
