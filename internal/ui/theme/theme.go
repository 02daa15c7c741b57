package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/vocab"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Word class colours for category badges.
var (
	NounColor      = lipgloss.Color("#F59E0B") // Amber
	VerbColor      = lipgloss.Color("#3B82F6") // Blue
	AdjectiveColor = lipgloss.Color("#EC4899") // Pink
	AdverbColor    = lipgloss.Color("#A855F7") // Purple
	PhraseColor    = lipgloss.Color("#14B8A6") // Teal
	OtherColor     = lipgloss.Color("#94A3B8") // Slate
)

// ClassColor returns the badge colour for a word class.
func ClassColor(c vocab.WordClass) color.Color {
	switch c {
	case vocab.ClassNoun:
		return NounColor
	case vocab.ClassVerb:
		return VerbColor
	case vocab.ClassAdjective:
		return AdjectiveColor
	case vocab.ClassAdverb:
		return AdverbColor
	case vocab.ClassPhrase:
		return PhraseColor
	default:
		return OtherColor
	}
}

// Badge renders a category label in its class colour.
func Badge(label string, c vocab.WordClass) string {
	return lipgloss.NewStyle().
		Foreground(BgDark).
		Background(ClassColor(c)).
		Bold(true).
		Padding(0, 1).
		Render(label)
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	CardRevealed = Card.
			BorderForeground(Secondary)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Disabled = lipgloss.NewStyle().
			Foreground(Border)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Padding(0, 2)
)
