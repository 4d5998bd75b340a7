package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/utfq/agmd/internal/cli/formatter"
	"github.com/utfq/agmd/internal/domain"
)

type browseKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type browseItem struct {
	path string
	task domain.Task
}

// browseModel is a flat cursor over every matching task, rendered in its
// per-file groups.
type browseModel struct {
	items    []browseItem
	cursor   int
	keys     browseKeyMap
	quitting bool
}

func newBrowseModel(groups []FileTasks) browseModel {
	var items []browseItem
	for _, g := range groups {
		for _, t := range g.Tasks {
			items = append(items, browseItem{path: g.Path, task: t})
		}
	}
	return browseModel{items: items, keys: defaultBrowseKeyMap()}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	lastPath := ""
	for i, item := range m.items {
		if item.path != lastPath {
			b.WriteString(formatter.StyleHeader.Render(item.path))
			b.WriteString("\n")
			lastPath = item.path
		}
		prefix := "  "
		if i == m.cursor {
			prefix = formatter.StyleGreen.Render("> ")
		}
		b.WriteString(prefix)
		b.WriteString(formatter.StyledTask(item.task))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(formatter.Dim("j/k move · q quit"))
	b.WriteString("\n")
	return b.String()
}
