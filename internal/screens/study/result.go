package study

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/practice"
	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/ui/components"
	"github.com/abhisek/wordiz/internal/ui/layout"
	"github.com/abhisek/wordiz/internal/ui/theme"
	"github.com/abhisek/wordiz/internal/vocab"
)

// maxListedMistakes caps the mistakes shown before the list is elided.
const maxListedMistakes = 8

// ResultScreen shows the report of a completed session and offers the
// chain actions the engine allows.
type ResultScreen struct {
	env    *screen.Env
	unit   *vocab.Unit
	engine *practice.Engine
	report practice.Report
	menu   components.Menu
}

var (
	_ screen.Screen          = (*ResultScreen)(nil)
	_ screen.KeyHintProvider = (*ResultScreen)(nil)
)

// NewResult creates the result screen for the engine's completed session.
func NewResult(env *screen.Env, unit *vocab.Unit, engine *practice.Engine) *ResultScreen {
	report, _ := engine.Report()
	r := &ResultScreen{
		env:    env,
		unit:   unit,
		engine: engine,
		report: report,
	}
	r.menu = components.NewMenu(r.menuItems(engine.Offers()))
	return r
}

func (r *ResultScreen) menuItems(o practice.Offers) []components.MenuItem {
	items := []components.MenuItem{
		{
			Label:  r.env.T("chain.retry"),
			Action: r.chain(r.engine.RetryBatch),
		},
	}
	if r.report.Mode == practice.ModeRecall {
		items = append(items, components.MenuItem{
			Label:    r.env.T("chain.mistakes", len(r.report.Mistakes)),
			Action:   r.chain(r.engine.RetryMistakes),
			Disabled: !o.RetryMistakes,
		})
	}

	next := components.MenuItem{
		Label:    r.env.T("chain.next", o.Next.Start, o.Next.End),
		Action:   r.chain(r.engine.NextBatch),
		Disabled: !o.NextBatch,
	}
	if !o.NextBatch {
		next.Label = r.env.T("practice.next")
		next.Detail = r.env.T("drill.unavailable")
	}
	items = append(items, next)

	items = append(items,
		components.MenuItem{
			Label: r.env.T("chain.change"),
			Action: func() tea.Cmd {
				r.engine.ReturnToSetup()
				return func() tea.Msg { return router.PopScreenMsg{} }
			},
		},
		components.MenuItem{
			Label: r.env.T("chain.home"),
			Action: func() tea.Cmd {
				r.engine.ReturnToSetup()
				return func() tea.Msg { return router.PopToRootMsg{} }
			},
		},
	)
	return items
}

// chain wraps an engine chain action into a menu action that replaces this
// screen with a fresh practice screen.
func (r *ResultScreen) chain(action func() error) func() tea.Cmd {
	return func() tea.Cmd {
		if err := action(); err != nil {
			r.env.Log().Debug("chain action rejected", "error", err)
			return nil
		}
		next := ForMode(r.env, r.unit, r.engine)
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return r.env.T("result.title")
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: r.env.T("app.navigate")},
		{Key: "Enter", Description: r.env.T("app.select")},
		{Key: "Esc", Description: r.env.T("app.back")},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	rep := r.report
	cw := layout.ContentWidth(width)

	var sections []string
	sections = append(sections, theme.Title.Render(r.env.T("result.title")))
	sections = append(sections, theme.Subtitle.Render(
		r.env.T("result.desc", rep.Range.Start, rep.Range.End)))

	if rep.Mode == practice.ModeRecall {
		sections = append(sections, "", theme.Body.Render(
			r.env.T("result.score", rep.Correct, rep.Wrong, rep.Total)))

		if len(rep.Mistakes) == 0 {
			sections = append(sections, "", theme.Correct.Render(r.env.T("result.perfect")))
		} else {
			sections = append(sections, "", theme.Incorrect.Render(r.env.T("result.mistakes")))
			sections = append(sections, lipgloss.NewStyle().Foreground(theme.Border).
				Render(strings.Repeat("─", min(cw, 40))))
			for i, item := range rep.Mistakes {
				if i == maxListedMistakes {
					sections = append(sections, theme.Hint.Render("…"))
					break
				}
				sections = append(sections, theme.Badge(item.Category, item.Class)+" "+
					theme.Body.Render(item.Term)+theme.Hint.Render("  "+item.Gloss))
			}
		}
	}

	sections = append(sections, "", r.menu.View())
	return layout.Center(strings.Join(sections, "\n"), width, height)
}
