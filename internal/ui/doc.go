// Package ui holds the presentation rules shared by every workcheck surface:
// the TUI card, the plain "once" output and the "watch" stream.
//
// # Color Tiers
//
// Values are classed into traffic-light tiers and drawn with ANSI colors:
//
//	ConfidenceTier  >80 green, 51-80 yellow, <=50 red
//	AnswerTier      working green, not working red
//
// # Icons
//
// Status entries name icons symbolically ("Database", "Coffee", ...). Icon
// resolves them to glyphs and falls back to the Activity glyph for unknown
// names, so a bad catalog entry never breaks rendering.
//
// # Labels
//
// ButtonLabel, Title and the telemetry label constants hold the fixed texts.
package ui
