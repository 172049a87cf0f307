package widget

import "strings"

// bigLetters are 5-row block glyphs for the answer labels.
var bigLetters = map[rune][]string{
	'Y': {
		"█   █",
		" █ █ ",
		"  █  ",
		"  █  ",
		"  █  ",
	},
	'E': {
		"█████",
		"█    ",
		"████ ",
		"█    ",
		"█████",
	},
	'S': {
		" ████",
		"█    ",
		" ███ ",
		"    █",
		"████ ",
	},
	'N': {
		"█   █",
		"██  █",
		"█ █ █",
		"█  ██",
		"█   █",
	},
	'O': {
		" ███ ",
		"█   █",
		"█   █",
		"█   █",
		" ███ ",
	},
}

const bigTextRows = 5

// BigText renders s in block letters. Unknown runes make it fall back to s.
func BigText(s string) string {
	glyphs := make([][]string, 0, len(s))
	for _, r := range strings.ToUpper(s) {
		g, ok := bigLetters[r]
		if !ok {
			return s
		}
		glyphs = append(glyphs, g)
	}

	rows := make([]string, bigTextRows)
	for i := range rows {
		parts := make([]string, len(glyphs))
		for j, g := range glyphs {
			parts[j] = g[i]
		}
		rows[i] = strings.Join(parts, " ")
	}
	return strings.Join(rows, "\n")
}
