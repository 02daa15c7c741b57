package vocab

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// fallbackLang is the gloss language tried when the requested one is missing.
const fallbackLang = "en"

// SelectGloss picks the meaning to show for a UI language. The order is:
// the requested language, English, any other candidate (lowest language
// code first), then the raw fallback. Blank candidates are ignored.
func SelectGloss(glosses map[string]string, lang, fallback string) string {
	if g := lookupGloss(glosses, BaseLanguage(lang)); g != "" {
		return g
	}
	if g := lookupGloss(glosses, fallbackLang); g != "" {
		return g
	}

	keys := make([]string, 0, len(glosses))
	for k := range glosses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if g := strings.TrimSpace(glosses[k]); g != "" {
			return g
		}
	}

	return strings.TrimSpace(fallback)
}

// BaseLanguage reduces a BCP 47 tag such as "de-AT" or "pt_BR" to its base
// language code. Unparseable input is lower-cased and returned as is.
func BaseLanguage(lang string) string {
	lang = strings.TrimSpace(strings.ReplaceAll(lang, "_", "-"))
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return strings.ToLower(lang)
	}
	base, _ := tag.Base()
	return base.String()
}

func lookupGloss(glosses map[string]string, lang string) string {
	if lang == "" {
		return ""
	}
	return strings.TrimSpace(glosses[lang])
}
