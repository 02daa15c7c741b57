package practice

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/wordiz/internal/vocab"
)

// Verdict is the outcome of grading one submission.
type Verdict int

const (
	Ungraded Verdict = iota
	Correct
	Incorrect
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "ungraded"
	}
}

// Grade compares a typed answer with the item's term. Surrounding
// whitespace is ignored. Nouns must match exactly; every other class is
// compared after lower-casing, which keeps letters such as ß distinct
// from their expansions. There is no partial credit.
func Grade(submitted string, item vocab.LearningItem) (Verdict, error) {
	answer := strings.TrimSpace(submitted)
	if answer == "" {
		return Ungraded, ErrEmptyAnswer
	}
	if matches(answer, item) {
		return Correct, nil
	}
	return Incorrect, nil
}

func matches(answer string, item vocab.LearningItem) bool {
	if item.Class.CaseSensitive() {
		return answer == item.Term
	}
	lower := cases.Lower(language.Und)
	return lower.String(answer) == lower.String(item.Term)
}
