package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	archivedto "mindspace/internal/modules/archive/dto"
	checklistdto "mindspace/internal/modules/checklist/dto"
	focusdto "mindspace/internal/modules/focus/dto"
	timerdto "mindspace/internal/modules/timer/dto"
	spaceview "mindspace/internal/ui/views/space"
)

type fakeTimer struct {
	state   timerdto.StateOutput
	started []int
}

func (f *fakeTimer) StartPreset(_ context.Context, minutes int) (timerdto.StateOutput, error) {
	f.started = append(f.started, minutes)
	f.state = timerdto.StateOutput{RemainingSeconds: minutes * 60, HasValue: true, Active: true, Phase: "running", Display: "25:00"}
	return f.state, nil
}
func (f *fakeTimer) State(context.Context) timerdto.StateOutput { return f.state }
func (f *fakeTimer) Presets() []int                           { return []int{15, 25, 45} }

type fakeArchive struct{}

func (fakeArchive) Roadmap(context.Context) archivedto.RoadmapOutput {
	return archivedto.RoadmapOutput{Learn: "bubbletea"}
}
func (fakeArchive) Notes(context.Context) []archivedto.NoteOutput { return nil }

type fakeChecklist struct{ items []checklistdto.ItemOutput }

func (f *fakeChecklist) Items() []checklistdto.ItemOutput { return f.items }
func (f *fakeChecklist) Toggle(id string) []checklistdto.ItemOutput {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Checked = !f.items[i].Checked
		}
	}
	return f.items
}

type fakeFocus struct{ on bool }

func (f *fakeFocus) EnterFocus() focusdto.ModeOutput {
	f.on = true
	return focusdto.ModeOutput{Focus: true}
}

func (f *fakeFocus) ExitFocus() focusdto.ModeOutput {
	f.on = false
	return focusdto.ModeOutput{}
}

func (f *fakeFocus) IsFocusMode() bool { return f.on }

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send applies msg and then feeds back any message its command produces.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = m.Update(out)
			m = next.(Model)
		}
	}
	return m
}

func newTestModel() (Model, *fakeTimer, *fakeFocus, *fakeChecklist) {
	timer := &fakeTimer{}
	focus := &fakeFocus{}
	checklist := &fakeChecklist{items: []checklistdto.ItemOutput{{ID: "learned", Label: "Learned"}, {ID: "rested", Label: "Rested"}}}
	m := NewModel(timer, fakeArchive{}, checklist, focus)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), timer, focus, checklist
}

func TestPresetStartsCountdownFromSpace(t *testing.T) {
	t.Parallel()
	m, timer, _, _ := newTestModel()
	m = send(t, m, keyPress("enter"))
	if m.screen != screenSpace {
		t.Fatalf("enter should open the personal space")
	}
	m = send(t, m, keyPress("2"))
	if len(timer.started) != 1 || timer.started[0] != 25 {
		t.Fatalf("expected 25 minute start, got %v", timer.started)
	}
	if !m.space.State().Active {
		t.Fatalf("space view should reflect the running countdown")
	}
	if !strings.Contains(m.View(), "25:00") {
		t.Fatalf("view should show the clock")
	}
}

func TestFocusModeOverlayAndExit(t *testing.T) {
	t.Parallel()
	m, _, focus, _ := newTestModel()
	m = send(t, m, keyPress("enter"))
	m = send(t, m, keyPress("f"))
	if focus.on {
		t.Fatalf("focus mode needs a started countdown")
	}
	m = send(t, m, keyPress("1"))
	m = send(t, m, keyPress("f"))
	if !focus.on {
		t.Fatalf("f should request focus mode from the parent")
	}
	if !strings.Contains(m.View(), "D E E P") {
		t.Fatalf("overlay should be rendered in focus mode")
	}

	before := m.space.State()
	m = send(t, m, spaceview.TimerMsg{State: timerdto.StateOutput{RemainingSeconds: before.RemainingSeconds - 1, HasValue: true, Active: true, Display: "14:59"}})
	if m.space.State().RemainingSeconds != before.RemainingSeconds-1 {
		t.Fatalf("countdown must keep updating under the overlay")
	}
	m = send(t, m, keyPress("esc"))
	if focus.on {
		t.Fatalf("esc should leave focus mode")
	}
	if m.screen != screenSpace {
		t.Fatalf("leaving focus mode should return to the space, got %v", m.screen)
	}
}

func TestChecklistToggleAndBack(t *testing.T) {
	t.Parallel()
	m, _, _, checklist := newTestModel()
	m = send(t, m, keyPress("enter"))
	m = send(t, m, keyPress("j"))
	m = send(t, m, keyPress("x"))
	if checklist.items[0].Checked || !checklist.items[1].Checked {
		t.Fatalf("expected second item checked, got %+v", checklist.items)
	}
	m = send(t, m, keyPress("b"))
	if m.screen != screenHome {
		t.Fatalf("b should navigate back home")
	}
}
