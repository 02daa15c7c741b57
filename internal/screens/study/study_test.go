package study

import (
	"strings"
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
	"github.com/abhisek/wordiz/internal/vocab"
)

func testUnit() *vocab.Unit {
	return &vocab.Unit{
		Name:  "test/verbs",
		Title: "Verbs",
		Items: []vocab.LearningItem{
			{Term: "gehen", Category: "VERB", Class: vocab.ClassVerb, Gloss: "to go", Example: "Wir *** nach Hause."},
			{Term: "kommen", Category: "VERB", Class: vocab.ClassVerb, Gloss: "to come"},
			{Term: "wohnen", Category: "VERB", Class: vocab.ClassVerb, Gloss: "to live"},
			{Term: "sprechen", Category: "VERB", Class: vocab.ClassVerb, Gloss: "to speak"},
		},
	}
}

func testEnv() *screen.Env {
	return &screen.Env{
		Loc:                i18n.NewLocalizer(language.English),
		AutoAdvance:        time.Millisecond,
		RecallPresets:      []int{2},
		RecognitionPresets: []int{2},
		Shuffler:           practice.NewSeededShuffler(7),
	}
}

// startSession builds an engine in mode m with a session over words 1-n.
func startSession(t *testing.T, m practice.Mode, n int) (*screen.Env, *vocab.Unit, *practice.Engine) {
	t.Helper()
	env := testEnv()
	unit := testUnit()
	engine := env.NewEngine(unit)
	require.NoError(t, engine.SetMode(m))
	require.NoError(t, engine.SelectRange(1, n))
	return env, unit, engine
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(keyPress(r))
	}
	return s
}

func currentTerm(t *testing.T, engine *practice.Engine) string {
	t.Helper()
	item, ok := engine.Session().Current()
	require.True(t, ok, "no current item")
	return item.Term
}

func replacedWith(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	return msg.Screen
}

func TestForMode(t *testing.T) {
	env, unit, engine := startSession(t, practice.ModeRecall, 2)
	if _, ok := ForMode(env, unit, engine).(*RecallScreen); !ok {
		t.Error("recall engine should get a RecallScreen")
	}

	env, unit, engine = startSession(t, practice.ModeRecognition, 2)
	if _, ok := ForMode(env, unit, engine).(*FlashcardsScreen); !ok {
		t.Error("recognition engine should get a FlashcardsScreen")
	}
}

func TestRecall_CorrectAnswerAutoAdvances(t *testing.T) {
	env, unit, engine := startSession(t, practice.ModeRecall, 3)
	var s screen.Screen = NewRecall(env, unit, engine)

	s = typeText(s, currentTerm(t, engine))
	s, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd, "correct answer should schedule an auto-advance")
	assert.Equal(t, practice.Correct, engine.Session().Verdict)
	assert.Contains(t, s.View(80, 24), "Correct!")

	msg := cmd()
	_, ok := msg.(autoAdvanceMsg)
	require.True(t, ok, "expected autoAdvanceMsg, got %T", msg)

	s.Update(msg)
	if engine.Session().Position != 1 {
		t.Errorf("Position = %d, want 1", engine.Session().Position)
	}
	if engine.Session().Correct != 1 {
		t.Errorf("Correct = %d, want 1", engine.Session().Correct)
	}
}

func TestRecall_ManualAdvanceBeatsTimer(t *testing.T) {
	env, unit, engine := startSession(t, practice.ModeRecall, 3)
	var s screen.Screen = NewRecall(env, unit, engine)

	s = typeText(s, currentTerm(t, engine))
	s, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)

	// Enter again advances at once; the settled timer must not move again.
	s.Update(specialKey(tea.KeyEnter))
	require.Equal(t, 1, engine.Session().Position)

	s.Update(cmd())
	if engine.Session().Position != 1 {
		t.Errorf("Position = %d after stale timer, want 1", engine.Session().Position)
	}
}

func TestRecall_WrongAnswerShowsTerm(t *testing.T) {
	env, unit, engine := startSession(t, practice.ModeRecall, 2)
	var s screen.Screen = NewRecall(env, unit, engine)
	term := currentTerm(t, engine)

	s = typeText(s, "falsch")
	s, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("wrong answer should not schedule an auto-advance")
	}
	assert.Contains(t, s.View(80, 24), "Wrong: "+term)

	// Typing is ignored once graded.
	s = typeText(s, "x")
	assert.Equal(t, "falsch", engine.Session().Submitted)

	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 1, engine.Session().Position)
	assert.Equal(t, 1, engine.Session().Wrong)
}

func TestRecall_EmptyAnswerIgnored(t *testing.T) {
	env, unit, engine := startSession(t, practice.ModeRecall, 2)
	s := NewRecall(env, unit, engine)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, practice.Ungraded, engine.Session().Verdict)
}

func TestRecall_SkipToResult(t *testing.T) {
	env, unit, engine := startSession(t, practice.ModeRecall, 2)
	var s screen.Screen = NewRecall(env, unit, engine)

	s, _ = s.Update(specialKey(tea.KeyTab))
	_, cmd := s.Update(specialKey(tea.KeyTab))

	result, ok := replacedWith(t, cmd).(*ResultScreen)
	require.True(t, ok, "expected ResultScreen")
	assert.Equal(t, 2, result.report.Wrong)
	assert.Len(t, result.report.Mistakes, 2)
}

func TestRecall_Status(t *testing.T) {
	env, unit, engine := startSession(t, practice.ModeRecall, 3)
	s := NewRecall(env, unit, engine)
	if got := s.Status(); got != "1 / 3" {
		t.Errorf("Status = %q, want %q", got, "1 / 3")
	}
}

func TestFlashcards_FlipAndNavigate(t *testing.T) {
	env, unit, engine := startSession(t, practice.ModeRecognition, 2)
	var s screen.Screen = NewFlashcards(env, unit, engine)
	term := currentTerm(t, engine)

	assert.NotContains(t, s.View(80, 24), term)
	s, _ = s.Update(keyPress(' '))
	require.True(t, engine.Session().Revealed)
	assert.Contains(t, s.View(80, 24), term)

	s, cmd := s.Update(specialKey(tea.KeyRight))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, engine.Session().Position)
	assert.False(t, engine.Session().Revealed, "next card starts on its front")

	s, _ = s.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, 0, engine.Session().Position)

	s, _ = s.Update(specialKey(tea.KeyRight))
	_, cmd = s.Update(specialKey(tea.KeyRight))
	if _, ok := replacedWith(t, cmd).(*ResultScreen); !ok {
		t.Error("finishing the deck should show the result screen")
	}
}

func TestResult_RecallOffers(t *testing.T) {
	env, unit, engine := startSession(t, practice.ModeRecall, 2)
	require.NoError(t, engine.Advance())
	require.NoError(t, engine.Advance())

	r := NewResult(env, unit, engine)
	require.Len(t, r.menu.Items, 5)
	assert.False(t, r.menu.Items[0].Disabled, "retry is always offered")
	assert.False(t, r.menu.Items[1].Disabled, "mistakes were made")
	assert.Equal(t, "Retry mistakes (2)", r.menu.Items[1].Label)
	assert.Equal(t, "Next set (3-4)", r.menu.Items[2].Label)

	view := r.View(80, 30)
	assert.Contains(t, view, "0 correct, 2 wrong of 2")
	assert.Contains(t, view, "Mistakes")
}

func TestResult_NextUnavailableAtEnd(t *testing.T) {
	env, unit, engine := startSession(t, practice.ModeRecognition, 4)
	for i := 0; i < 4; i++ {
		require.NoError(t, engine.Advance())
	}

	r := NewResult(env, unit, engine)
	require.Len(t, r.menu.Items, 4, "recognition has no mistakes replay")
	assert.True(t, r.menu.Items[1].Disabled, "nothing after the last word")
}

func TestResult_RetryReplacesWithPractice(t *testing.T) {
	env, unit, engine := startSession(t, practice.ModeRecall, 2)
	require.NoError(t, engine.Advance())
	require.NoError(t, engine.Advance())

	var s screen.Screen = NewResult(env, unit, engine)
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if _, ok := replacedWith(t, cmd).(*RecallScreen); !ok {
		t.Error("retry should start a new recall screen")
	}
	assert.Equal(t, practice.PhaseActive, engine.Phase())
	assert.Equal(t, 0, engine.Session().Wrong)
}

func TestResult_ChangeRangeAndHome(t *testing.T) {
	env, unit, engine := startSession(t, practice.ModeRecognition, 2)
	require.NoError(t, engine.Advance())
	require.NoError(t, engine.Advance())

	r := NewResult(env, unit, engine)
	r.menu.Selected = 2
	_, cmd := r.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("change range should pop back to setup")
	}
	assert.Equal(t, practice.PhaseSetup, engine.Phase())

	r.menu.Selected = 3
	_, cmd = r.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("main menu should pop to the root screen")
	}
	assert.True(t, strings.Contains(r.View(80, 30), "words 1-2"))
}
