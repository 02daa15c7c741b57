package practice

import (
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/wordiz/internal/vocab"
)

// Mode selects how items are studied.
type Mode int

const (
	ModeRecognition Mode = iota // Flip cards, no grading
	ModeRecall                  // Typed answers, graded
)

func (m Mode) String() string {
	if m == ModeRecall {
		return "recall"
	}
	return "recognition"
}

// ParseMode maps "recall" and "recognition" (or "flashcards") to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recall", "quiz":
		return ModeRecall, true
	case "recognition", "flashcards", "cards":
		return ModeRecognition, true
	default:
		return ModeRecognition, false
	}
}

// SessionState is one pass over a shuffled batch.
type SessionState struct {
	// ID is unique per launch and keys deferred auto-advances.
	ID string

	// Mode is fixed for the lifetime of the session.
	Mode Mode

	// Range is the batch range the session was launched from. A mistakes
	// replay keeps the range of the session it replays.
	Range BatchRange

	// Items is the working order: a shuffled copy of the batch.
	Items []vocab.LearningItem

	// Position is the index of the current item in Items.
	Position int

	// Mistakes collects wrong and skipped items in the order they happened.
	Mistakes []vocab.LearningItem

	// Correct and Wrong count graded outcomes (recall only).
	Correct int
	Wrong   int

	// Revealed is true when the current card shows its back (recognition).
	Revealed bool

	// Submitted is the trimmed answer for the current item (recall).
	Submitted string

	// Verdict is the grade of the current item, Ungraded until submitted.
	Verdict Verdict

	// Complete is set once the last item has been advanced past.
	Complete bool
}

// Report summarizes a completed session.
type Report struct {
	Range    BatchRange
	Mode     Mode
	Total    int
	Correct  int
	Wrong    int
	Mistakes []vocab.LearningItem
}

// NewSession starts a session over items, which must already be in
// working order.
func NewSession(mode Mode, r BatchRange, items []vocab.LearningItem) *SessionState {
	return &SessionState{
		ID:    uuid.NewString(),
		Mode:  mode,
		Range: r,
		Items: items,
	}
}

// Current returns the item under the cursor.
func (s *SessionState) Current() (vocab.LearningItem, bool) {
	if s.Complete || s.Position < 0 || s.Position >= len(s.Items) {
		return vocab.LearningItem{}, false
	}
	return s.Items[s.Position], true
}

// Token identifies the current item of this session.
func (s *SessionState) Token() Token {
	return Token{SessionID: s.ID, Position: s.Position}
}

// Graded reports whether the current item already has a verdict.
func (s *SessionState) Graded() bool {
	return s.Verdict != Ungraded
}

// Submit grades an answer for the current item and records the outcome.
// A blank answer returns ErrEmptyAnswer and changes nothing.
func (s *SessionState) Submit(text string) (Verdict, error) {
	if s.Complete {
		return Ungraded, ErrSessionComplete
	}
	if s.Mode != ModeRecall {
		return Ungraded, ErrWrongMode
	}
	if s.Graded() {
		return s.Verdict, ErrAlreadyGraded
	}

	item, _ := s.Current()
	v, err := Grade(text, item)
	if err != nil {
		return Ungraded, err
	}

	s.Submitted = strings.TrimSpace(text)
	s.Verdict = v
	if v == Correct {
		s.Correct++
	} else {
		s.recordMistake(item)
	}
	return v, nil
}

// Advance moves to the next item. In recall mode an ungraded item is
// counted as a skip, which is a wrong answer.
func (s *SessionState) Advance() error {
	if s.Complete {
		return ErrSessionComplete
	}
	if s.Mode == ModeRecall && !s.Graded() {
		item, _ := s.Current()
		s.recordMistake(item)
	}

	s.Position++
	s.resetItem()
	if s.Position >= len(s.Items) {
		s.Position = len(s.Items)
		s.Complete = true
	}
	return nil
}

// Flip toggles the current card between front and back.
func (s *SessionState) Flip() error {
	if s.Complete {
		return ErrSessionComplete
	}
	if s.Mode != ModeRecognition {
		return ErrWrongMode
	}
	s.Revealed = !s.Revealed
	return nil
}

// Back returns to the previous card. It is a no-op on the first card.
func (s *SessionState) Back() error {
	if s.Complete {
		return ErrSessionComplete
	}
	if s.Mode != ModeRecognition {
		return ErrWrongMode
	}
	if s.Position > 0 {
		s.Position--
	}
	s.resetItem()
	return nil
}

// Report returns the session summary. Mistakes is a copy.
func (s *SessionState) Report() Report {
	mistakes := make([]vocab.LearningItem, len(s.Mistakes))
	copy(mistakes, s.Mistakes)
	return Report{
		Range:    s.Range,
		Mode:     s.Mode,
		Total:    len(s.Items),
		Correct:  s.Correct,
		Wrong:    s.Wrong,
		Mistakes: mistakes,
	}
}

func (s *SessionState) recordMistake(item vocab.LearningItem) {
	s.Wrong++
	s.Mistakes = append(s.Mistakes, item)
}

func (s *SessionState) resetItem() {
	s.Revealed = false
	s.Submitted = ""
	s.Verdict = Ungraded
}
