package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordiz/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu. Disabled items are shown dimmed and
// skipped by the cursor.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Prev()
	case "down", "j":
		m.Next()
	case "enter":
		if item, ok := m.Current(); ok && item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}

	return m, nil
}

// Prev moves the cursor to the previous enabled item.
func (m *Menu) Prev() {
	for i := m.Selected - 1; i >= 0; i-- {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// Next moves the cursor to the next enabled item.
func (m *Menu) Next() {
	for i := m.Selected + 1; i < len(m.Items); i++ {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// Current returns the item under the cursor.
func (m Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		line := item.Label
		if item.Detail != "" {
			line += "  " + theme.Hint.Render(item.Detail)
		}
		switch {
		case item.Disabled:
			b.WriteString(theme.Disabled.Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ ") + theme.Selected.Render(item.Label))
			if item.Detail != "" {
				b.WriteString("  " + theme.Hint.Render(item.Detail))
			}
		default:
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
