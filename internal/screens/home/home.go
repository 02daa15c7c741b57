package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordiz/internal/practice"
	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/screens/setup"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/ui/theme"
	"github.com/abhisek/wordiz/internal/vocab"
)

// maxVisibleUnits is the number of unit rows shown at once.
const maxVisibleUnits = 10

type stage int

const (
	stageUnits stage = iota
	stageMode
)

// entry is one row of the unit list.
type entry struct {
	name string
	unit *vocab.Unit
	err  error
}

// HomeScreen lists the units of the library and, once one is chosen,
// the practice modes.
type HomeScreen struct {
	env     *screen.Env
	entries []entry
	listErr error

	stage    stage
	filter   components.TextInput
	cursor   int
	selected *vocab.Unit
	modes    components.Menu
	err      string
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
	_ screen.Resumer         = (*HomeScreen)(nil)
)

// New creates the home screen and loads every unit of the library. When
// env.Unit names a unit it is selected straight away.
func New(env *screen.Env) *HomeScreen {
	h := &HomeScreen{
		env:    env,
		filter: components.NewTextInput(env.T("home.search"), false, 40),
	}
	h.load()

	if env.Unit != "" {
		h.open(env.Unit)
	}
	return h
}

func (h *HomeScreen) load() {
	names, err := h.env.Library.Units()
	if err != nil {
		h.listErr = err
		h.env.Log().Error("list units failed", "error", err)
		return
	}
	lang := h.env.Lang()
	for _, name := range names {
		u, err := h.env.Library.Load(name, lang)
		if err != nil {
			h.env.Log().Warn("unit failed to load", "unit", name, "error", err)
		}
		h.entries = append(h.entries, entry{name: name, unit: u, err: err})
	}
}

// open selects a unit by name and moves to the mode stage.
func (h *HomeScreen) open(name string) {
	for _, e := range h.entries {
		if e.name != name {
			continue
		}
		if e.err != nil {
			h.err = h.env.T("home.load_error", e.err)
			return
		}
		h.choose(e.unit)
		return
	}
	h.err = h.env.T("home.load_error", fmt.Errorf("%w: %s", vocab.ErrUnitNotFound, name))
}

func (h *HomeScreen) choose(u *vocab.Unit) {
	h.selected = u
	h.stage = stageMode
	h.err = ""
	h.modes = components.NewMenu([]components.MenuItem{
		{
			Label:  h.env.T("mode.recognition"),
			Detail: h.env.T("mode.recognition_desc"),
			Action: h.startMode(practice.ModeRecognition),
		},
		{
			Label:  h.env.T("mode.recall"),
			Detail: h.env.T("mode.recall_desc"),
			Action: h.startMode(practice.ModeRecall),
		},
	})
}

func (h *HomeScreen) startMode(m practice.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		engine := h.env.NewEngine(h.selected)
		if err := engine.SetMode(m); err != nil {
			h.err = err.Error()
			return nil
		}
		next := setup.New(h.env, h.selected, engine)
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	}
}

// visible returns the entries matching the filter.
func (h *HomeScreen) visible() []entry {
	q := strings.ToLower(strings.TrimSpace(h.filter.Value()))
	if q == "" {
		return h.entries
	}
	var out []entry
	for _, e := range h.entries {
		title := e.name
		if e.unit != nil {
			title += " " + e.unit.Title
		}
		if strings.Contains(strings.ToLower(title), q) {
			out = append(out, e)
		}
	}
	return out
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.stage == stageUnits {
		return h.filter.Init()
	}
	return nil
}

// Resume keeps the chosen unit so the learner can pick another mode.
func (h *HomeScreen) Resume() tea.Cmd {
	h.err = ""
	return nil
}

func (h *HomeScreen) Title() string {
	if h.stage == stageMode && h.selected != nil {
		return h.selected.Title
	}
	return h.env.T("home.title")
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: h.env.T("app.navigate")},
		{Key: "Enter", Description: h.env.T("app.select")},
	}
	if h.stage == stageMode {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: h.env.T("app.back")})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: h.env.T("app.quit")})
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.stage == stageMode {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
			h.stage = stageUnits
			h.err = ""
			return h, h.filter.Focus()
		}
		var cmd tea.Cmd
		h.modes, cmd = h.modes.Update(msg)
		return h, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		visible := h.visible()
		switch kmsg.String() {
		case "up":
			h.cursor = max(0, h.cursor-1)
			return h, nil
		case "down":
			h.cursor = max(0, min(h.cursor+1, len(visible)-1))
			return h, nil
		case "enter":
			if h.cursor < len(visible) {
				h.open(visible[h.cursor].name)
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.filter, cmd = h.filter.Update(msg)
	h.cursor = max(0, min(h.cursor, len(h.visible())-1))
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	if h.stage == stageMode {
		sections = append(sections,
			theme.Title.Render(h.selected.Title),
			theme.Subtitle.Render(h.env.T("home.words", len(h.selected.Items))),
			"",
			theme.Body.Render(h.env.T("mode.title")),
			"",
			strings.TrimRight(h.modes.View(), "\n"),
		)
	} else {
		sections = append(sections, theme.Title.Render(h.env.T("home.title")), "", h.filter.View(), "")
		sections = append(sections, h.renderList())
	}

	if h.listErr != nil {
		sections = append(sections, "", theme.Incorrect.Render(h.env.T("home.load_error", h.listErr)))
	}
	if h.err != "" {
		sections = append(sections, "", theme.Incorrect.Render(h.err))
	}
	return layout.Center(strings.Join(sections, "\n"), width, height)
}

func (h *HomeScreen) renderList() string {
	visible := h.visible()
	if len(visible) == 0 {
		return theme.Hint.Render(h.env.T("home.empty"))
	}

	first := max(0, h.cursor-maxVisibleUnits+1)
	last := min(len(visible), first+maxVisibleUnits)

	var b strings.Builder
	for i := first; i < last; i++ {
		e := visible[i]
		title := e.name
		detail := ""
		switch {
		case e.err != nil:
			detail = theme.Incorrect.Render("!")
		case e.unit != nil:
			title = e.unit.Title
			detail = theme.Hint.Render(h.env.T("home.words", len(e.unit.Items)) + "  " + e.name)
		}

		if i == h.cursor {
			b.WriteString(theme.Selected.Render("  ▸ " + title))
		} else {
			b.WriteString(theme.Unselected.Render("    " + title))
		}
		b.WriteString("  " + detail + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
