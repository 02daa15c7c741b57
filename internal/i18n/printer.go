package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Resolve maps a user-supplied language ("de", "uk-UA", "tr_TR") to the
// closest supported locale, falling back to English.
func Resolve(lang string) language.Tag {
	lang = strings.TrimSpace(strings.ReplaceAll(lang, "_", "-"))
	// POSIX locales carry an encoding suffix: "de_DE.UTF-8".
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" || strings.EqualFold(lang, "C") || strings.EqualFold(lang, "POSIX") {
		return BaseLocale
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return BaseLocale
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return BaseLocale
	}
	return Supported[idx]
}

// Code returns the short locale code of a supported tag ("de").
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// T formats the label key for tag.
func T(tag language.Tag, key string, args ...any) string {
	return Printer(tag).Sprintf(key, args...)
}

// Localizer binds a locale so callers do not thread the tag around.
type Localizer struct {
	tag language.Tag
	p   *message.Printer
}

// NewLocalizer creates a Localizer for tag.
func NewLocalizer(tag language.Tag) *Localizer {
	return &Localizer{tag: tag, p: Printer(tag)}
}

// Tag returns the bound locale.
func (l *Localizer) Tag() language.Tag { return l.tag }

// T formats the label key.
func (l *Localizer) T(key string, args ...any) string {
	return l.p.Sprintf(key, args...)
}
