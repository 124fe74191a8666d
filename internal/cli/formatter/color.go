package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasvieira/iepdesk/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RatingIndicator returns a colored marker for an activity rating.
func RatingIndicator(r domain.Rating) string {
	switch r {
	case domain.RatingLike:
		return StyleGreen.Render("👍 liked")
	case domain.RatingDislike:
		return StyleRed.Render("👎 disliked")
	default:
		return StyleDim.Render("–")
	}
}

// FavoriteIndicator returns a star marker for favorited activities.
func FavoriteIndicator(favorited bool) string {
	if favorited {
		return StyleYellow.Render("★")
	}
	return StyleDim.Render("☆")
}

// AIMark renders the provenance badge shown next to AI-generated fields.
func AIMark() string {
	return StylePurple.Render("✨ AI")
}
