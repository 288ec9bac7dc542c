package space

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	checklistdto "mindspace/internal/modules/checklist/dto"
	timerdto "mindspace/internal/modules/timer/dto"
	"mindspace/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type TimerPort interface {
	StartPreset(ctx context.Context, minutes int) (timerdto.StateOutput, error)
	State(ctx context.Context) timerdto.StateOutput
	Presets() []int
}

type ChecklistPort interface {
	Items() []checklistdto.ItemOutput
	Toggle(id string) []checklistdto.ItemOutput
}

// ─── messages ────────────────────────────────────────────────────────────────

// TimerMsg carries a countdown change pushed by the controller.
type TimerMsg struct {
	State timerdto.StateOutput
}

type timerStartedMsg struct {
	err error
}

// BackMsg asks the parent to navigate away from the personal space.
type BackMsg struct{}

// FocusRequestMsg asks the parent to change its focus-mode flag.
type FocusRequestMsg struct {
	Value bool
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	timer     TimerPort
	checklist ChecklistPort

	state  timerdto.StateOutput
	items  []checklistdto.ItemOutput
	cursor int
	err    string
	width  int
	height int
}

func New(timer TimerPort, checklist ChecklistPort) Model {
	m := Model{timer: timer, checklist: checklist}
	if checklist != nil {
		m.items = checklist.Items()
	}
	if timer != nil {
		m.state = timer.State(context.Background())
	}
	return m
}

// State returns the last countdown state the view has seen.
func (m Model) State() timerdto.StateOutput { return m.state }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TimerMsg:
		m.state = msg.State

	case timerStartedMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.err = ""
		// A tick may already have overtaken the start result.
		m.state = m.timer.State(context.Background())

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			idx := int(key[0] - '1')
			presets := m.presets()
			if idx < len(presets) {
				return m, m.startCmd(presets[idx])
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ", "x":
			if m.checklist != nil && m.cursor < len(m.items) {
				m.items = m.checklist.Toggle(m.items[m.cursor].ID)
			}
		case "f":
			if m.state.HasValue {
				return m, func() tea.Msg { return FocusRequestMsg{Value: true} }
			}
		case "b", "esc":
			return m, func() tea.Msg { return BackMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	timerCard := theme.CardActive.Render(m.renderTimer())
	checkCard := theme.Card.Render(m.renderChecklist())

	var cards string
	if m.width > 0 && m.width < lipgloss.Width(timerCard)+lipgloss.Width(checkCard)+2 {
		cards = lipgloss.JoinVertical(lipgloss.Left, timerCard, checkCard)
	} else {
		cards = lipgloss.JoinHorizontal(lipgloss.Top, timerCard, "  ", checkCard)
	}

	header := lipgloss.JoinVertical(lipgloss.Center,
		theme.Heading.Render("Personal ")+theme.Title.Render("Mind Space"),
		theme.Faint.Render("Silence the noise, listen to your mind."),
	)
	footer := theme.Faint.Render("private local archive · nothing here leaves this device")
	return lipgloss.JoinVertical(lipgloss.Center, header, "", cards, "", footer)
}

func (m Model) renderTimer() string {
	var sb strings.Builder
	sb.WriteString(theme.Heading.Render("Start a focus session") + "\n\n")
	buttons := make([]string, 0, len(m.presets()))
	for i, p := range m.presets() {
		buttons = append(buttons, theme.Button.Render(fmt.Sprintf("%d · %d min", i+1, p)))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...) + "\n\n")
	if m.state.HasValue {
		sb.WriteString(theme.Clock.Render(m.state.Display) + "\n\n")
		if m.state.Active {
			sb.WriteString(theme.Muted.Render("f: hide everything") + "\n")
		} else {
			sb.WriteString(theme.Checked.Render("session complete") + "  " + theme.Muted.Render("f: hide everything") + "\n")
		}
	} else {
		sb.WriteString(theme.Faint.Render("Pick a duration to begin deep work.") + "\n")
	}
	if m.err != "" {
		sb.WriteString("\n" + theme.Muted.Render("error: "+m.err) + "\n")
	}
	return sb.String()
}

func (m Model) renderChecklist() string {
	var sb strings.Builder
	sb.WriteString(theme.Heading.Render("Today, for myself") + "\n\n")
	for i, item := range m.items {
		box := "[ ]"
		label := item.Label
		if item.Checked {
			box = theme.Checked.Render("[x]")
		}
		pointer := "  "
		if i == m.cursor {
			pointer = theme.Title.Render("› ")
		}
		sb.WriteString(pointer + box + " " + label + "\n")
		sb.WriteString("      " + theme.Faint.Render(item.Sub) + "\n")
	}
	return sb.String()
}

func (m Model) presets() []int {
	if m.timer == nil {
		return nil
	}
	return m.timer.Presets()
}

func (m Model) startCmd(minutes int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.timer.StartPreset(context.Background(), minutes)
		return timerStartedMsg{err: err}
	}
}
