package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

type pickedMsg struct{ label string }

func testMenu() Menu {
	pick := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return pickedMsg{label} }
		}
	}
	return NewMenu([]MenuItem{
		{Label: "disabled first", Disabled: true},
		{Label: "retry", Action: pick("retry")},
		{Label: "mistakes", Action: pick("mistakes"), Disabled: true},
		{Label: "next", Action: pick("next")},
	})
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := testMenu()
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item 1", m.Selected)
	}

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("Selected = %d after down, want 3", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("Selected = %d after down at end, want 3", m.Selected)
	}
	m, _ = m.Update(keyPress('k'))
	if m.Selected != 1 {
		t.Errorf("Selected = %d after up, want 1", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("Selected = %d after up at top, want 1", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(specialKey(tea.KeyDown))

	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	if msg, ok := cmd().(pickedMsg); !ok || msg.label != "next" {
		t.Errorf("got %#v, want pickedMsg{next}", cmd())
	}
}

func TestMenu_View(t *testing.T) {
	view := testMenu().View()
	for _, want := range []string{"retry", "mistakes", "next", "▸"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("", true, 4)
	for _, r := range "1a2" {
		ti, _ = ti.Update(keyPress(r))
	}
	if ti.Value() != "12" {
		t.Errorf("Value = %q, want %q", ti.Value(), "12")
	}
	n, err := ti.NumericValue()
	if err != nil || n != 12 {
		t.Errorf("NumericValue = %d, %v; want 12", n, err)
	}
}

func TestTextInput_SubmitReset(t *testing.T) {
	ti := NewTextInput("", false, 0)
	ti.SetValue("Haus")
	ti.Submit(true)
	if !ti.Submitted() || !strings.Contains(ti.View(), "✓") {
		t.Error("expected a check mark after a valid submit")
	}

	ti.Reset()
	if ti.Submitted() || ti.Value() != "" {
		t.Errorf("after reset: submitted=%v value=%q", ti.Submitted(), ti.Value())
	}
}

func TestNewStepBar(t *testing.T) {
	bar := NewStepBar(3, 10, 40)
	if bar.Percent != 0.3 {
		t.Errorf("Percent = %v, want 0.3", bar.Percent)
	}
	if !strings.Contains(bar.View(), "3 / 10") {
		t.Error("step bar should show the step count")
	}
	if NewStepBar(0, 0, 40).Percent != 0 {
		t.Error("empty step bar should be at 0")
	}
}
