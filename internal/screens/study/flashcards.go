package study

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/practice"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/ui/theme"
	"github.com/abhisek/wordiz/internal/vocab"
)

// FlashcardsScreen runs a recognition session: the gloss on the front,
// the term and its example on the back.
type FlashcardsScreen struct {
	env    *screen.Env
	unit   *vocab.Unit
	engine *practice.Engine
}

var (
	_ screen.Screen          = (*FlashcardsScreen)(nil)
	_ screen.KeyHintProvider = (*FlashcardsScreen)(nil)
	_ screen.StatusProvider  = (*FlashcardsScreen)(nil)
)

// NewFlashcards creates a flashcards screen over the engine's active session.
func NewFlashcards(env *screen.Env, unit *vocab.Unit, engine *practice.Engine) *FlashcardsScreen {
	return &FlashcardsScreen{env: env, unit: unit, engine: engine}
}

func (f *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (f *FlashcardsScreen) Title() string {
	return f.env.T("mode.recognition")
}

func (f *FlashcardsScreen) Status() string {
	pos, total := progress(f.engine)
	return f.env.T("practice.progress", pos, total)
}

func (f *FlashcardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: f.env.T("practice.flip")},
		{Key: "←", Description: f.env.T("practice.prev")},
		{Key: "→", Description: f.env.T("practice.next")},
		{Key: "Esc", Description: f.env.T("app.back")},
	}
}

func (f *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch kmsg.String() {
	case "space", " ", "enter", "up", "down":
		_ = f.engine.Flip()
	case "right", "l", "n":
		if err := f.engine.Advance(); err == nil {
			return f, finish(f.env, f.unit, f.engine)
		}
	case "left", "h", "p":
		_ = f.engine.Back()
	}
	return f, nil
}

func (f *FlashcardsScreen) View(width, height int) string {
	s := f.engine.Session()
	if s == nil {
		return ""
	}
	item, ok := s.Current()
	if !ok {
		return ""
	}

	cw := layout.ContentWidth(width)
	pos, total := progress(f.engine)

	var card []string
	card = append(card, theme.Badge(item.Category, item.Class), "")
	card = append(card, theme.Title.Render(item.Gloss))

	style := theme.Card
	if s.Revealed {
		style = theme.CardRevealed
		card = append(card, "", lipgloss.NewStyle().
			Foreground(theme.ClassColor(item.Class)).
			Bold(true).
			Render(item.Term))
		if item.Example != "" {
			card = append(card, "", theme.Body.Render(item.RevealExample()))
		}
	} else {
		card = append(card, "", theme.Hint.Render(f.env.T("practice.tap_flip")))
	}

	sections := []string{
		components.NewStepBar(pos, total, cw).View(),
		"",
		style.Width(cw).Render(strings.Join(card, "\n")),
	}
	return layout.Center(strings.Join(sections, "\n"), width, height)
}
