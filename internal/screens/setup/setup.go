package setup

import (
	"errors"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordiz/internal/practice"
	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/screens/study"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/ui/theme"
	"github.com/abhisek/wordiz/internal/vocab"
)

// SetupScreen lets the learner pick a preset batch or a custom range
// before a session starts.
type SetupScreen struct {
	env     *screen.Env
	unit    *vocab.Unit
	engine  *practice.Engine
	presets []int

	// focus indexes presets first, then the from and to inputs, then start.
	focus int
	from  components.TextInput
	to    components.TextInput
	err   string
}

var (
	_ screen.Screen          = (*SetupScreen)(nil)
	_ screen.KeyHintProvider = (*SetupScreen)(nil)
	_ screen.StatusProvider  = (*SetupScreen)(nil)
	_ screen.Resumer         = (*SetupScreen)(nil)
)

// New creates a setup screen for an engine whose mode is already chosen.
func New(env *screen.Env, unit *vocab.Unit, engine *practice.Engine) *SetupScreen {
	s := &SetupScreen{
		env:     env,
		unit:    unit,
		engine:  engine,
		presets: env.Presets(engine.Mode()),
		from:    components.NewTextInput("1", true, 5),
		to:      components.NewTextInput(strconv.Itoa(engine.Len()), true, 5),
	}
	s.from.SetValue("1")
	s.to.SetValue(strconv.Itoa(engine.Len()))
	s.syncFocus()
	return s
}

func (s *SetupScreen) fromIndex() int  { return len(s.presets) }
func (s *SetupScreen) toIndex() int    { return len(s.presets) + 1 }
func (s *SetupScreen) startIndex() int { return len(s.presets) + 2 }

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

// Resume discards any finished session when the learner comes back here
// and fills the range inputs with the last range played.
func (s *SetupScreen) Resume() tea.Cmd {
	s.engine.ReturnToSetup()
	s.err = ""
	if r, ok := s.engine.LastRange(); ok {
		s.from.SetValue(strconv.Itoa(r.Start))
		s.to.SetValue(strconv.Itoa(r.End))
	}
	return nil
}

func (s *SetupScreen) Title() string {
	return s.env.T("setup.title")
}

func (s *SetupScreen) Status() string {
	return s.env.T("home.words", s.engine.Len())
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.env.T("app.navigate")},
		{Key: "Enter", Description: s.env.T("app.select")},
		{Key: "Esc", Description: s.env.T("app.back")},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "shift+tab":
		s.move(-1)
		return s, nil
	case "down", "tab":
		s.move(1)
		return s, nil
	case "enter":
		return s, s.activate()
	}

	var cmd tea.Cmd
	switch s.focus {
	case s.fromIndex():
		s.from, cmd = s.from.Update(msg)
	case s.toIndex():
		s.to, cmd = s.to.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) move(delta int) {
	s.focus = max(0, min(s.focus+delta, s.startIndex()))
	s.syncFocus()
}

func (s *SetupScreen) syncFocus() {
	s.from.Blur()
	s.to.Blur()
	switch s.focus {
	case s.fromIndex():
		s.from.Focus()
	case s.toIndex():
		s.to.Focus()
	}
}

func (s *SetupScreen) activate() tea.Cmd {
	switch {
	case s.focus < len(s.presets):
		return s.start(func() error {
			return s.engine.SelectPreset(s.presets[s.focus])
		})
	case s.focus == s.startIndex():
		start, err1 := s.from.NumericValue()
		end, err2 := s.to.NumericValue()
		if err1 != nil || err2 != nil {
			s.err = s.env.T("setup.not_number")
			return nil
		}
		return s.start(func() error {
			return s.engine.SelectRange(start, end)
		})
	default:
		s.move(1)
		return nil
	}
}

func (s *SetupScreen) start(selectBatch func() error) tea.Cmd {
	s.engine.ReturnToSetup()
	if err := selectBatch(); err != nil {
		s.err = s.describe(err)
		return nil
	}
	s.err = ""
	next := study.ForMode(s.env, s.unit, s.engine)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *SetupScreen) describe(err error) string {
	var rangeErr *practice.InvalidRangeError
	if errors.As(err, &rangeErr) {
		return s.env.T("setup.invalid", rangeErr.Start, rangeErr.End, rangeErr.Len)
	}
	return err.Error()
}

func (s *SetupScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Render(s.unit.Title))
	sections = append(sections, theme.Subtitle.Render(s.env.T("setup.count", s.engine.Len())))

	sections = append(sections, "", theme.Hint.Render(s.env.T("setup.fast")))
	presets := make([]components.MenuItem, len(s.presets))
	for i, size := range s.presets {
		presets[i] = components.MenuItem{Label: s.env.T("setup.preset", size)}
	}
	menu := components.NewMenu(presets)
	menu.Selected = s.focus
	sections = append(sections, strings.TrimRight(menu.View(), "\n"))

	sections = append(sections, "", theme.Hint.Render(s.env.T("setup.range")))
	sections = append(sections, s.field(s.env.T("setup.from"), s.from, s.fromIndex()))
	sections = append(sections, s.field(s.env.T("setup.to"), s.to, s.toIndex()))
	sections = append(sections, "", components.NewButton(s.env.T("setup.start"), s.focus == s.startIndex()).View())

	if s.err != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.err))
	}
	return layout.Center(strings.Join(sections, "\n"), width, height)
}

func (s *SetupScreen) field(label string, input components.TextInput, index int) string {
	style := theme.Unselected
	if s.focus == index {
		style = theme.Selected
	}
	return style.Render("  "+label+": ") + input.View()
}
