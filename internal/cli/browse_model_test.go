package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utfq/agmd/internal/domain"
)

func browseFixture() []FileTasks {
	d := domain.Date(2025, time.June, 15)
	sched := &domain.ScheduleInterval{Start: &d, Due: &d}
	return []FileTasks{
		{
			Path: "inbox.md",
			Tasks: []domain.Task{
				{Text: "Water plants", Annotation: "2025-06-15", Schedule: sched},
				{Text: "Feed cat", Annotation: "2025-06-15", Schedule: sched},
			},
		},
		{
			Path: "projects/renovation.md",
			Tasks: []domain.Task{
				{Text: "Paint hallway", Annotation: "2025-06-15", Schedule: sched},
			},
		},
	}
}

func keyPress(m browseModel, k string) browseModel {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return updated.(browseModel)
}

func TestBrowseModel_ViewGroupsByFile(t *testing.T) {
	m := newBrowseModel(browseFixture())

	view := m.View()
	assert.Contains(t, view, "inbox.md")
	assert.Contains(t, view, "projects/renovation.md")
	assert.Contains(t, view, "Water plants")
	assert.Contains(t, view, "Paint hallway")
	assert.Contains(t, view, "q quit")
}

func TestBrowseModel_CursorMoves(t *testing.T) {
	m := newBrowseModel(browseFixture())
	require.Equal(t, 0, m.cursor)

	m = keyPress(m, "j")
	assert.Equal(t, 1, m.cursor)
	m = keyPress(m, "j")
	assert.Equal(t, 2, m.cursor)

	// Bottom of the list: stays put.
	m = keyPress(m, "j")
	assert.Equal(t, 2, m.cursor)

	m = keyPress(m, "k")
	assert.Equal(t, 1, m.cursor)
}

func TestBrowseModel_CursorStopsAtTop(t *testing.T) {
	m := newBrowseModel(browseFixture())
	m = keyPress(m, "k")
	assert.Equal(t, 0, m.cursor)
}

func TestBrowseModel_QuitClearsView(t *testing.T) {
	m := newBrowseModel(browseFixture())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(browseModel)
	require.NotNil(t, cmd, "quit should produce tea.Quit")
	assert.Empty(t, m.View())
}
