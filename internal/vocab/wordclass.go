package vocab

import (
	"strings"

	"golang.org/x/text/cases"
)

// WordClass is the grammatical class of a learning item. It is decided once
// when the item is normalized and drives grading and display colour.
type WordClass int

const (
	ClassOther WordClass = iota
	ClassNoun
	ClassVerb
	ClassAdjective
	ClassAdverb
	ClassPhrase
)

// String returns the canonical English label of the class.
func (c WordClass) String() string {
	switch c {
	case ClassNoun:
		return "noun"
	case ClassVerb:
		return "verb"
	case ClassAdjective:
		return "adjective"
	case ClassAdverb:
		return "adverb"
	case ClassPhrase:
		return "phrase"
	default:
		return "other"
	}
}

// CaseSensitive reports whether answers for this class must match the
// term's capitalization exactly.
func (c WordClass) CaseSensitive() bool {
	return c == ClassNoun
}

// classLabels maps folded category labels, as they appear in the data files
// of every supported UI language, to a word class.
var classLabels = map[string]WordClass{
	// English
	"noun": ClassNoun, "n": ClassNoun, "n.": ClassNoun,
	"verb": ClassVerb, "v": ClassVerb, "v.": ClassVerb,
	"adjective": ClassAdjective, "adj": ClassAdjective, "adj.": ClassAdjective,
	"adverb": ClassAdverb, "adv": ClassAdverb, "adv.": ClassAdverb,
	"phrase": ClassPhrase, "expression": ClassPhrase, "idiom": ClassPhrase,

	// German
	"nomen": ClassNoun, "substantiv": ClassNoun, "hauptwort": ClassNoun,
	"zeitwort": ClassVerb, "tätigkeitswort": ClassVerb,
	"adjektiv": ClassAdjective, "eigenschaftswort": ClassAdjective,
	"ausdruck": ClassPhrase, "redewendung": ClassPhrase, "wendung": ClassPhrase,

	// Turkish
	"isim": ClassNoun, "ad": ClassNoun,
	"fiil": ClassVerb,
	"sıfat": ClassAdjective, "sifat": ClassAdjective,
	"zarf": ClassAdverb,
	"ifade": ClassPhrase, "deyim": ClassPhrase, "kalıp": ClassPhrase,

	// Ukrainian
	"іменник": ClassNoun,
	"дієслово": ClassVerb,
	"прикметник": ClassAdjective,
	"прислівник": ClassAdverb,
	"вираз": ClassPhrase, "фраза": ClassPhrase,

	// Spanish
	"sustantivo": ClassNoun, "nombre": ClassNoun,
	"verbo": ClassVerb,
	"adjetivo": ClassAdjective,
	"adverbio": ClassAdverb,
	"frase": ClassPhrase, "expresión": ClassPhrase,
}

// ParseWordClass maps a free-form category label to a WordClass.
// Unknown or empty labels yield ClassOther.
func ParseWordClass(label string) WordClass {
	key := foldLabel(label)
	if key == "" {
		return ClassOther
	}
	if c, ok := classLabels[key]; ok {
		return c
	}
	return ClassOther
}

// foldLabel case-folds a label and drops the combining dot that folding
// leaves behind for Turkish dotted capitals ("İSİM" -> "isim").
func foldLabel(label string) string {
	folded := cases.Fold().String(strings.TrimSpace(label))
	return strings.ReplaceAll(folded, "\u0307", "")
}
