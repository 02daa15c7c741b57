package screen

import (
	"log/slog"
	"time"

	"github.com/abhisek/wordiz/internal/i18n"
	"github.com/abhisek/wordiz/internal/practice"
	"github.com/abhisek/wordiz/internal/vocab"
)

// Env carries the dependencies every screen shares.
type Env struct {
	Library *vocab.Library
	Loc     *i18n.Localizer
	Logger  *slog.Logger

	// Unit, when set, is opened directly instead of showing the unit list.
	Unit string

	AutoAdvance        time.Duration
	RecallPresets      []int
	RecognitionPresets []int

	// Shuffler overrides the engine's clock-seeded shuffler in tests.
	Shuffler *practice.Shuffler
}

// T formats a localized label.
func (e *Env) T(key string, args ...any) string {
	return e.Loc.T(key, args...)
}

// Lang returns the gloss language for loading units.
func (e *Env) Lang() string {
	return i18n.Code(e.Loc.Tag())
}

// Presets returns the preset sizes offered for a mode.
func (e *Env) Presets(m practice.Mode) []int {
	if m == practice.ModeRecall {
		return e.RecallPresets
	}
	return e.RecognitionPresets
}

// NewEngine builds a practice engine over a unit's items.
func (e *Env) NewEngine(unit *vocab.Unit) *practice.Engine {
	return practice.NewEngine(unit.Items, practice.Options{
		AutoAdvance: e.AutoAdvance,
		Shuffler:    e.Shuffler,
		Logger:      e.Log().With("unit", unit.Name),
	})
}

// Log returns the shared logger, or a discarding one when none is set.
func (e *Env) Log() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}
