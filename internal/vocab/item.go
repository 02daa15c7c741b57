package vocab

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Placeholder marks the position of the term inside an example sentence.
	Placeholder = "***"

	// Blank replaces the placeholder when the term must stay hidden.
	Blank = "______"

	// DefaultCategory is used when an item carries no category label.
	DefaultCategory = "WORD"
)

// LearningItem is one normalized vocabulary entry. It is a value type and is
// never modified after Normalize returns it.
type LearningItem struct {
	// Term is the target-language word or phrase. Never empty.
	Term string

	// Category is the display label (upper case), e.g. "NOMEN" or "İSİM".
	Category string

	// Class is the word class parsed from Category.
	Class WordClass

	// Gloss is the localized meaning shown as the prompt.
	Gloss string

	// Example is a sentence containing Placeholder, or empty.
	Example string
}

// RawItem is a learning item as read from a data file, before gloss
// selection and validation.
type RawItem struct {
	Term     string
	Category string
	// Glosses holds candidate meanings keyed by language code ("en", "tr").
	Glosses map[string]string
	// Fallback is the language-neutral meaning field, if any.
	Fallback string
	Example  string
}

// Normalize converts a raw item into a LearningItem for the requested UI
// language. It reports false when the item has no usable term.
func Normalize(raw RawItem, lang string) (LearningItem, bool) {
	term := strings.TrimSpace(raw.Term)
	if term == "" {
		return LearningItem{}, false
	}

	category := strings.TrimSpace(raw.Category)
	if category == "" {
		category = DefaultCategory
	}

	gloss := SelectGloss(raw.Glosses, lang, raw.Fallback)
	if gloss == "" {
		gloss = term
	}

	return LearningItem{
		Term:     term,
		Category: cases.Upper(language.Und).String(category),
		Class:    ParseWordClass(category),
		Gloss:    gloss,
		Example:  strings.TrimSpace(raw.Example),
	}, true
}

// NormalizeAll normalizes every raw item and drops the ones without a term.
// The relative order of the remaining items is preserved.
func NormalizeAll(raws []RawItem, lang string) []LearningItem {
	items := make([]LearningItem, 0, len(raws))
	for _, raw := range raws {
		if item, ok := Normalize(raw, lang); ok {
			items = append(items, item)
		}
	}
	return items
}

// RevealExample returns the example with the term filled in.
func (it LearningItem) RevealExample() string {
	return strings.ReplaceAll(it.Example, Placeholder, it.Term)
}

// PromptExample returns the example with the term blanked out.
func (it LearningItem) PromptExample() string {
	return strings.ReplaceAll(it.Example, Placeholder, Blank)
}
