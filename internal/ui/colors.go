package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors, as ANSI codes for terminal compatibility.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Tier is the traffic-light class a value is shown in.
type Tier int

const (
	TierRed Tier = iota
	TierYellow
	TierGreen
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierGreen:
		return "green"
	case TierYellow:
		return "yellow"
	default:
		return "red"
	}
}

// Color maps a tier to its ANSI color.
func (t Tier) Color() lipgloss.Color {
	switch t {
	case TierGreen:
		return ColorSuccess
	case TierYellow:
		return ColorWarning
	default:
		return ColorError
	}
}

// Style returns a foreground style in the tier's color.
func (t Tier) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Color())
}

// Confidence tier thresholds: above High is green, above Medium is yellow.
const (
	ConfidenceHigh   = 80
	ConfidenceMedium = 50
)

// ConfidenceTier classifies a confidence percentage:
// >80 green, 51-80 yellow, <=50 red.
func ConfidenceTier(confidence int) Tier {
	switch {
	case confidence > ConfidenceHigh:
		return TierGreen
	case confidence > ConfidenceMedium:
		return TierYellow
	default:
		return TierRed
	}
}

// AnswerTier is green for working statuses and red otherwise.
func AnswerTier(working bool) Tier {
	if working {
		return TierGreen
	}
	return TierRed
}
