package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/workcheck/internal/refresh"
	"github.com/rileyhilliard/workcheck/internal/ui"
)

// renderScreen centers the card when the terminal size is known.
func (m Model) renderScreen() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.renderCard(),
		FooterStyle.Render(m.help.View(keys)),
	)

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// renderCard renders the status card for the current state.
func (m Model) renderCard() string {
	return RenderCard(m.subject, m.state, m.spinner.View())
}

// RenderCard draws a card for any state. buttonGlyph is the glyph shown on the
// refresh button (a spinner frame while loading).
func RenderCard(subject string, s refresh.State, buttonGlyph string) string {
	inner := CardWidth - 4
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	lines := []string{
		TitleStyle.Render(strings.ToUpper(ui.Title(subject))),
		DividerStyle.Render(strings.Repeat("─", inner)),
		"",
		center.Render(answerStyle(s.Status.Working()).Render(BigText(string(s.Status.Answer())))),
		"",
		center.Render(ui.Icon(s.Status.Icon())),
		"",
		center.Render(MessageStyle.Render(s.Status.Message())),
		"",
		renderTelemetry(s.Confidence, inner),
		"",
		center.Render(renderButton(s.Loading, buttonGlyph)),
	}

	return CardStyle.Render(strings.Join(lines, "\n"))
}

// renderTelemetry renders the "LIVE TELEMETRY ... CONFIDENCE: NN%" strip.
func renderTelemetry(confidence int, width int) string {
	left := PulseStyle.Render(ui.Icon("Activity")) + " " + ui.TelemetryLabel
	right := ui.ConfidenceLabel + " " + confidenceStyle(confidence).Render(ui.FormatConfidence(confidence))

	// border (2) + padding (2)
	gap := width - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return TelemetryStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func renderButton(loading bool, glyph string) string {
	style := ButtonStyle
	if loading {
		style = ButtonLoadingStyle
	}
	return style.Render(glyph + " " + ui.ButtonLabel(loading))
}
