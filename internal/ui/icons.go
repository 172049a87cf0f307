package ui

import "sort"

// DefaultIcon is used when an icon identifier is not known.
const DefaultIcon = "Activity"

// iconGlyphs maps symbolic icon identifiers to terminal glyphs.
var iconGlyphs = map[string]string{
	"Database":        "🗄",
	"Terminal":        "💻",
	"Cpu":             "🧮",
	"Video":           "📹",
	"Wifi":            "📶",
	"FileText":        "📄",
	"Cloud":           "☁",
	"Beer":            "🍺",
	"Home":            "🏠",
	"AlertTriangle":   "⚠",
	"Coffee":          "☕",
	"BatteryCharging": "🔋",
	"ShoppingBag":     "🛍",
	"Clock":           "🕒",
	"RefreshCw":       "↻",
	"Activity":        "📈",
}

// KnownIcon reports whether name resolves to a glyph.
func KnownIcon(name string) bool {
	_, ok := iconGlyphs[name]
	return ok
}

// Icon resolves an icon identifier, falling back to the Activity glyph.
func Icon(name string) string {
	if glyph, ok := iconGlyphs[name]; ok {
		return glyph
	}
	return iconGlyphs[DefaultIcon]
}

// IconNames returns the known icon identifiers in sorted order.
func IconNames() []string {
	names := make([]string, 0, len(iconGlyphs))
	for name := range iconGlyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
