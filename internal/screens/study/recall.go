package study

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordiz/internal/practice"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/ui/theme"
	"github.com/abhisek/wordiz/internal/vocab"
)

// RecallScreen runs a recall quiz: the gloss and a blanked example are
// shown and the learner types the term.
type RecallScreen struct {
	env    *screen.Env
	unit   *vocab.Unit
	engine *practice.Engine
	input  components.TextInput
}

var (
	_ screen.Screen          = (*RecallScreen)(nil)
	_ screen.KeyHintProvider = (*RecallScreen)(nil)
	_ screen.StatusProvider  = (*RecallScreen)(nil)
)

// NewRecall creates a recall screen over the engine's active session.
func NewRecall(env *screen.Env, unit *vocab.Unit, engine *practice.Engine) *RecallScreen {
	return &RecallScreen{
		env:    env,
		unit:   unit,
		engine: engine,
		input:  components.NewTextInput(env.T("practice.input"), false, 0),
	}
}

func (r *RecallScreen) Init() tea.Cmd {
	return r.input.Init()
}

func (r *RecallScreen) Title() string {
	return r.env.T("mode.recall")
}

func (r *RecallScreen) Status() string {
	pos, total := progress(r.engine)
	return r.env.T("practice.progress", pos, total)
}

func (r *RecallScreen) KeyHints() []layout.KeyHint {
	if r.graded() {
		return []layout.KeyHint{
			{Key: "Enter", Description: r.env.T("practice.next")},
			{Key: "Esc", Description: r.env.T("app.back")},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: r.env.T("practice.check")},
		{Key: "Tab", Description: r.env.T("practice.skip")},
		{Key: "Esc", Description: r.env.T("app.back")},
	}
}

func (r *RecallScreen) graded() bool {
	s := r.engine.Session()
	return s != nil && s.Graded()
}

func (r *RecallScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case autoAdvanceMsg:
		if r.engine.AutoAdvance(msg.token) {
			return r, r.afterAdvance()
		}
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if r.graded() {
				return r, r.advance()
			}
			return r, r.submit()
		case "tab":
			return r, r.advance()
		}
		if r.graded() {
			return r, nil
		}
	}

	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return r, cmd
}

func (r *RecallScreen) submit() tea.Cmd {
	v, d, err := r.engine.Submit(r.input.Value())
	if err != nil {
		if !errors.Is(err, practice.ErrEmptyAnswer) {
			r.env.Log().Debug("submit rejected", "error", err)
		}
		return nil
	}
	r.input.Submit(v == practice.Correct)
	r.input.Blur()
	if d != nil {
		return waitFor(d)
	}
	return nil
}

func (r *RecallScreen) advance() tea.Cmd {
	if err := r.engine.Advance(); err != nil {
		return nil
	}
	return r.afterAdvance()
}

func (r *RecallScreen) afterAdvance() tea.Cmd {
	if cmd := finish(r.env, r.unit, r.engine); cmd != nil {
		return cmd
	}
	r.input.Reset()
	return r.input.Focus()
}

func (r *RecallScreen) View(width, height int) string {
	s := r.engine.Session()
	if s == nil {
		return ""
	}
	item, ok := s.Current()
	if !ok {
		return ""
	}

	cw := layout.ContentWidth(width)
	pos, total := progress(r.engine)

	card := []string{
		theme.Badge(item.Category, item.Class),
		"",
		theme.Title.Render(item.Gloss),
	}
	if item.Example != "" {
		card = append(card, "", theme.Body.Render(item.PromptExample()))
	}

	sections := []string{
		components.NewStepBar(pos, total, cw).View(),
		"",
		theme.Card.Width(cw).Render(strings.Join(card, "\n")),
		"",
		r.input.View(),
		"",
		r.feedback(s),
	}
	return layout.Center(strings.Join(sections, "\n"), width, height)
}

func (r *RecallScreen) feedback(s *practice.SessionState) string {
	switch s.Verdict {
	case practice.Correct:
		return theme.Correct.Render(r.env.T("practice.correct"))
	case practice.Incorrect:
		item, _ := s.Current()
		return theme.Incorrect.Render(r.env.T("practice.wrong", item.Term))
	default:
		return ""
	}
}
