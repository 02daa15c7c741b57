package setup

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/abhisek/wordiz/internal/i18n"
	"github.com/abhisek/wordiz/internal/practice"
	"github.com/abhisek/wordiz/internal/router"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/screens/study"
	"github.com/abhisek/wordiz/internal/vocab"
)

func newTestSetup(t *testing.T, m practice.Mode, n int) (*SetupScreen, *practice.Engine) {
	t.Helper()
	env := &screen.Env{
		Loc:                i18n.NewLocalizer(language.English),
		AutoAdvance:        time.Hour,
		RecallPresets:      []int{5, 10},
		RecognitionPresets: []int{3},
		Shuffler:           practice.NewSeededShuffler(1),
	}
	unit := &vocab.Unit{Name: "test/unit", Title: "Test"}
	for i := 0; i < n; i++ {
		unit.Items = append(unit.Items, vocab.LearningItem{
			Term:  string(rune('a' + i)),
			Class: vocab.ClassVerb,
			Gloss: "gloss",
		})
	}
	engine := env.NewEngine(unit)
	require.NoError(t, engine.SetMode(m))
	return New(env, unit, engine), engine
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeDigits(s *SetupScreen, digits string) {
	for _, r := range digits {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func clearInput(s *SetupScreen) {
	for i := 0; i < 6; i++ {
		s.Update(specialKey(tea.KeyBackspace))
	}
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	return msg.Screen
}

func TestSetup_PresetsFollowMode(t *testing.T) {
	s, _ := newTestSetup(t, practice.ModeRecall, 12)
	assert.Equal(t, []int{5, 10}, s.presets)

	s, _ = newTestSetup(t, practice.ModeRecognition, 12)
	assert.Equal(t, []int{3}, s.presets)
}

func TestSetup_PresetStartsSession(t *testing.T) {
	s, engine := newTestSetup(t, practice.ModeRecall, 12)

	s.Update(specialKey(tea.KeyDown))
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if _, ok := pushed(t, cmd).(*study.RecallScreen); !ok {
		t.Error("recall preset should push a recall screen")
	}
	assert.Equal(t, practice.BatchRange{Start: 1, End: 10}, engine.Session().Range)
}

func TestSetup_CustomRange(t *testing.T) {
	s, engine := newTestSetup(t, practice.ModeRecognition, 12)

	s.Update(specialKey(tea.KeyDown)) // from
	clearInput(s)
	typeDigits(s, "4")
	s.Update(specialKey(tea.KeyDown)) // to
	clearInput(s)
	typeDigits(s, "9")
	s.Update(specialKey(tea.KeyDown)) // start

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*study.FlashcardsScreen); !ok {
		t.Error("recognition range should push a flashcards screen")
	}
	assert.Equal(t, practice.BatchRange{Start: 4, End: 9}, engine.Session().Range)
}

func TestSetup_ReversedRangeRejected(t *testing.T) {
	s, engine := newTestSetup(t, practice.ModeRecall, 12)

	s.focus = s.fromIndex()
	s.syncFocus()
	clearInput(s)
	typeDigits(s, "8")
	s.focus = s.toIndex()
	s.syncFocus()
	clearInput(s)
	typeDigits(s, "3")
	s.focus = s.startIndex()

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, "Invalid range 8-3 (the unit has 12 words)", s.err)
	assert.Equal(t, practice.PhaseSetup, engine.Phase())
	assert.Contains(t, s.View(80, 30), "Invalid range")
}

func TestSetup_BlankBoundRejected(t *testing.T) {
	s, _ := newTestSetup(t, practice.ModeRecall, 12)

	s.focus = s.fromIndex()
	s.syncFocus()
	clearInput(s)
	s.focus = s.startIndex()

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, "Enter whole numbers for the range", s.err)
}

func TestSetup_ResumeDiscardsSession(t *testing.T) {
	s, engine := newTestSetup(t, practice.ModeRecall, 12)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	require.Equal(t, practice.PhaseActive, engine.Phase())

	s.err = "stale"
	s.Resume()
	assert.Equal(t, practice.PhaseSetup, engine.Phase())
	assert.Empty(t, s.err)
}

func TestSetup_ResumePrefillsLastRange(t *testing.T) {
	s, engine := newTestSetup(t, practice.ModeRecall, 12)
	require.NoError(t, engine.SelectRange(4, 9))

	s.Resume()
	assert.Equal(t, "4", s.from.Value())
	assert.Equal(t, "9", s.to.Value())

	s.focus = s.startIndex()
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, practice.BatchRange{Start: 4, End: 9}, engine.Session().Range)
}

func TestSetup_FocusClamped(t *testing.T) {
	s, _ := newTestSetup(t, practice.ModeRecognition, 12)
	s.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 0, s.focus)
	for i := 0; i < 10; i++ {
		s.Update(specialKey(tea.KeyDown))
	}
	assert.Equal(t, s.startIndex(), s.focus)
}
