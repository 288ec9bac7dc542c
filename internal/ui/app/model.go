package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	archivedto "mindspace/internal/modules/archive/dto"
	checklistdto "mindspace/internal/modules/checklist/dto"
	focusdto "mindspace/internal/modules/focus/dto"
	timerdto "mindspace/internal/modules/timer/dto"
	"mindspace/internal/ui/theme"
	archiveview "mindspace/internal/ui/views/archive"
	"mindspace/internal/ui/views/overlay"
	spaceview "mindspace/internal/ui/views/space"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type timerPort interface {
	StartPreset(ctx context.Context, minutes int) (timerdto.StateOutput, error)
	State(ctx context.Context) timerdto.StateOutput
	Presets() []int
}

type archivePort interface {
	Roadmap(ctx context.Context) archivedto.RoadmapOutput
	Notes(ctx context.Context) []archivedto.NoteOutput
}

type checklistPort interface {
	Items() []checklistdto.ItemOutput
	Toggle(id string) []checklistdto.ItemOutput
}

// focusPort is the parent-owned focus flag handed to the personal space.
type focusPort interface {
	EnterFocus() focusdto.ModeOutput
	ExitFocus() focusdto.ModeOutput
	IsFocusMode() bool
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screenID int

const (
	screenHome screenID = iota
	screenSpace
)

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Open    key.Binding
	Presets key.Binding
	Check   key.Binding
	Focus   key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Open:    key.NewBinding(key.WithKeys("enter", "p"), key.WithHelp("enter", "personal space")),
		Presets: key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "start 15/25/45 min")),
		Check:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "check item")),
		Focus:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "focus mode")),
		Back:    key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b", "back")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Presets, k.Check},
		{k.Focus, k.Back},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns screen routing and the focus
// flag the personal space toggles through focusPort.
type Model struct {
	focus focusPort

	home  archiveview.Model
	space spaceview.Model

	screen   screenID
	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(timer timerPort, archive archivePort, checklist checklistPort, focus focusPort) Model {
	return Model{
		focus:  focus,
		home:   archiveview.New(archive),
		space:  spaceview.New(timer, checklist),
		screen: screenHome,
		keys:   defaultKeys(),
		help:   help.New(),
		status: "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return m.home.Init()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	// Countdown changes reach the space view whichever screen is showing.
	case spaceview.TimerMsg:
		m.space, _ = m.space.Update(msg)
		if !msg.State.Active && msg.State.HasValue && msg.State.RemainingSeconds == 0 {
			m.status = "focus session complete"
		}
		return m, nil

	case archiveview.ChangedMsg:
		var cmd tea.Cmd
		m.home, cmd = m.home.Update(msg)
		m.status = "archive reloaded"
		return m, cmd

	case spaceview.BackMsg:
		m.screen = screenHome
		m.status = "ready"
		return m, nil

	case spaceview.FocusRequestMsg:
		if msg.Value {
			m.focus.EnterFocus()
		} else {
			m.focus.ExitFocus()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus.IsFocusMode() {
			switch msg.String() {
			case "esc", "f", "enter":
				m.focus.ExitFocus()
			}
			return m, nil
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "enter", "p":
			if m.screen == screenHome {
				m.screen = screenSpace
				m.status = "personal space"
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenHome:
		m.home, cmd = m.home.Update(msg)
	case screenSpace:
		m.space, cmd = m.space.Update(msg)
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.focus.IsFocusMode() {
		clock := ""
		if st := m.space.State(); st.HasValue {
			clock = st.Display
		}
		return overlay.Render(m.width, m.height, clock)
	}

	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.screen == screenSpace:
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.space.View())
	default:
		content = m.home.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if st := m.space.State(); st.Active {
		left = theme.Clock.Render("● "+st.Display) + "  " + left
	}
	right := theme.Muted.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 2}
	m.home, _ = m.home.Update(sz)
	m.space, _ = m.space.Update(sz)
}
