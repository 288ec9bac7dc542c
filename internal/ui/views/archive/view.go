package archive

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	archivedto "mindspace/internal/modules/archive/dto"
	"mindspace/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ArchivePort interface {
	Roadmap(ctx context.Context) archivedto.RoadmapOutput
	Notes(ctx context.Context) []archivedto.NoteOutput
}

// ─── messages ────────────────────────────────────────────────────────────────

// ChangedMsg is sent when the archive storage was written from outside.
type ChangedMsg struct{}

type loadedMsg struct {
	roadmap archivedto.RoadmapOutput
	notes   []archivedto.NoteOutput
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    ArchivePort
	roadmap archivedto.RoadmapOutput
	notes   []archivedto.NoteOutput
	loaded  bool
	view    viewport.Model
	width   int
	height  int
}

func New(port ArchivePort) Model {
	return Model{port: port, view: viewport.New(0, 0)}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = msg.Width
		m.view.Height = msg.Height
		m.view.SetContent(m.render())
		return m, nil

	case ChangedMsg:
		return m, m.loadCmd()

	case loadedMsg:
		m.loaded = true
		m.roadmap = msg.roadmap
		m.notes = msg.notes
		m.view.SetContent(m.render())
		return m, nil
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.loaded {
		return theme.Muted.Render("Opening archive…")
	}
	return m.view.View()
}

// NoteCount reports how many notes the last load returned.
func (m Model) NoteCount() int { return len(m.notes) }

func (m Model) render() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Roadmap") + "\n\n")
	sb.WriteString(field("learn", m.roadmap.Learn))
	sb.WriteString(field("struggle", m.roadmap.Struggle))
	sb.WriteString(field("next step", m.roadmap.NextStep))

	sb.WriteString("\n" + theme.Title.Render(fmt.Sprintf("Notes (%d)", len(m.notes))) + "\n\n")
	if len(m.notes) == 0 {
		sb.WriteString(theme.Faint.Render("No notes yet. Add one with `mindspace notes add`.") + "\n")
	}
	for _, n := range m.notes {
		sb.WriteString(theme.Muted.Render(n.Date) + "  " + n.Text + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: open personal space"))

	content := sb.String()
	if m.width > 8 {
		content = lipgloss.NewStyle().Width(m.width - 4).Render(content)
	}
	return content
}

func field(label, value string) string {
	if strings.TrimSpace(value) == "" {
		value = theme.Faint.Render("-")
	}
	return theme.Muted.Render(fmt.Sprintf("%-10s", label)) + value + "\n"
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return loadedMsg{}
		}
		ctx := context.Background()
		return loadedMsg{roadmap: m.port.Roadmap(ctx), notes: m.port.Notes(ctx)}
	}
}
