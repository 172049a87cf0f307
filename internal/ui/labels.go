package ui

import "fmt"

// Fixed card texts.
const (
	TelemetryLabel  = "LIVE TELEMETRY"
	ConfidenceLabel = "CONFIDENCE:"
	ButtonIdle      = "Check Again"
	ButtonLoading   = "Querying Satellite..."
)

// ButtonLabel returns the refresh button text for the loading state.
func ButtonLabel(loading bool) string {
	if loading {
		return ButtonLoading
	}
	return ButtonIdle
}

// Title returns the card heading for the subject being queried.
func Title(subject string) string {
	return fmt.Sprintf("Current Status Query: Is %s Working?", subject)
}

// FormatConfidence renders a confidence value as a percentage.
func FormatConfidence(confidence int) string {
	return fmt.Sprintf("%d%%", confidence)
}
