// Package browse provides an interactive terminal browser for grouped
// attribute views.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dctmtools/dumpview/pkg/category"
	"github.com/dctmtools/dumpview/pkg/dump"
	"github.com/dctmtools/dumpview/pkg/render"
	"github.com/dctmtools/dumpview/pkg/view"
)

// Run launches the interactive browser over an already-parsed record list.
func Run(kind category.EntityKind, tables *category.Tables, records []dump.Record, theme render.Theme) error {
	program := tea.NewProgram(newModel(kind, tables, records, theme), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	kind    category.EntityKind
	tables  *category.Tables
	records []dump.Record
	theme   render.Theme

	sections  []view.Section
	selected  int // index into sections
	viewport  viewport.Model
	filter    textinput.Model
	filtering bool
	ready     bool
	width     int
	height    int
}

func newModel(kind category.EntityKind, tables *category.Tables, records []dump.Record, theme render.Theme) model {
	vp := viewport.New(0, 0)
	ti := textinput.New()
	ti.Placeholder = "attribute name"
	ti.Prompt = "/"
	ti.CharLimit = 64

	m := model{
		kind:     kind,
		tables:   tables,
		records:  records,
		theme:    theme,
		viewport: vp,
		filter:   ti,
	}
	m.recompose()
	return m
}

// recompose rebuilds the grouped view for the current kind and filter.
// Grouping is stable, so cycling the kind back restores the same layout.
func (m *model) recompose() {
	records := make([]dump.Record, 0, len(m.records))
	needle := strings.ToLower(m.filter.Value())
	for _, rec := range m.records {
		if needle != "" && !strings.Contains(strings.ToLower(rec.Name), needle) {
			continue
		}
		rec.Group = m.tables.Categorize(m.kind, rec.Name)
		records = append(records, rec)
	}
	m.sections = view.Compose(m.kind, records)
	if m.selected >= len(m.sections) {
		m.selected = 0
	}
	m.refreshViewport()
}

func (m *model) refreshViewport() {
	if len(m.sections) == 0 {
		m.viewport.SetContent(m.theme.Muted.Render("no attributes match"))
		return
	}
	sec := m.sections[m.selected]
	term := render.NewTerminal(m.theme, m.viewport.Width)
	m.viewport.SetContent(term.Render(m.kind.String(), []view.Section{sec}))
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
				if msg.String() == "esc" {
					m.filter.SetValue("")
				}
				m.recompose()
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.recompose()
				return m, cmd
			}
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
		case "down", "j":
			if m.selected < len(m.sections)-1 {
				m.selected++
				m.refreshViewport()
			}
		case "g":
			m.kind = nextKind(m.kind)
			m.recompose()
		case "/":
			m.filtering = true
			m.filter.Focus()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.width - listWidth - 3
		m.viewport.Height = m.height - 4
		m.ready = true
		m.refreshViewport()
	}
	return m, nil
}

const listWidth = 18

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := m.theme.Bold.Render(fmt.Sprintf("dumpview %s %s %d attributes", m.theme.Icons.Bullet, m.kind, len(m.records)))

	var list strings.Builder
	for i, sec := range m.sections {
		label := fmt.Sprintf("%s (%d)", sec.Group, len(sec.Records))
		if i == m.selected {
			list.WriteString(m.theme.Heading.Render("> " + label))
		} else {
			list.WriteString(m.theme.Muted.Render("  " + label))
		}
		list.WriteString("\n")
	}
	if len(m.sections) == 0 {
		list.WriteString(m.theme.Muted.Render("  (empty)"))
	}

	left := lipgloss.NewStyle().Width(listWidth).Height(m.viewport.Height).Render(list.String())
	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.viewport.View())

	status := m.theme.Muted.Render("j/k groups  / filter  g kind  q quit")
	if m.filtering {
		status = m.filter.View()
	} else if m.filter.Value() != "" {
		status = m.theme.Muted.Render("filter: "+m.filter.Value()+"  ") + status
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, panels, status)
}

func nextKind(k category.EntityKind) category.EntityKind {
	switch k {
	case category.KindObject:
		return category.KindUser
	case category.KindUser:
		return category.KindGroup
	default:
		return category.KindObject
	}
}
