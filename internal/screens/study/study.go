// Package study holds the practice screens: flashcards, the typed recall
// quiz, and the result screen that chains one session into the next.
package study

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordiz/internal/practice"
	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/vocab"
)

// autoAdvanceMsg is delivered when a scheduled auto-advance fires or is
// cancelled. The engine decides whether it is still current.
type autoAdvanceMsg struct {
	token practice.Token
}

// waitFor blocks until d settles and reports its token.
func waitFor(d *practice.Deferred) tea.Cmd {
	return func() tea.Msg {
		<-d.Done()
		return autoAdvanceMsg{token: d.Token}
	}
}

// ForMode returns the screen that runs the engine's active session.
func ForMode(env *screen.Env, unit *vocab.Unit, engine *practice.Engine) screen.Screen {
	if engine.Mode() == practice.ModeRecall {
		return NewRecall(env, unit, engine)
	}
	return NewFlashcards(env, unit, engine)
}

// finish swaps the practice screen for the result screen once the session
// is complete.
func finish(env *screen.Env, unit *vocab.Unit, engine *practice.Engine) tea.Cmd {
	if engine.Phase() != practice.PhaseComplete {
		return nil
	}
	result := NewResult(env, unit, engine)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: result}
	}
}

// progress returns the 1-based position and total of the active session.
func progress(engine *practice.Engine) (int, int) {
	s := engine.Session()
	if s == nil {
		return 0, 0
	}
	return min(s.Position+1, len(s.Items)), len(s.Items)
}
