package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/workcheck/internal/ui"
)

// CardWidth is the inner width of the status card.
const CardWidth = 52

var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorMuted).
			Padding(0, 2).
			Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Bold(true).
			Width(CardWidth - 4).
			Align(lipgloss.Center)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	MessageStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Width(CardWidth - 8).
			Align(lipgloss.Center)

	TelemetryStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ui.ColorMuted).
			Padding(0, 1)

	PulseStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorInfo).
			Bold(true).
			Padding(0, 2)

	ButtonLoadingStyle = ButtonStyle.
				BorderForeground(ui.ColorWarning)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(0, 1)
)

// answerStyle colors the big answer by its tier.
func answerStyle(working bool) lipgloss.Style {
	return ui.AnswerTier(working).Style().Bold(true)
}

// confidenceStyle colors the confidence value by its tier.
func confidenceStyle(confidence int) lipgloss.Style {
	return ui.ConfidenceTier(confidence).Style().Bold(true)
}
