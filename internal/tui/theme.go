package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// colorChoices is the picker palette for the three customizable colors.
var colorChoices = []string{
	"#2b6cb0", "#c05621", "#276749", "#6b46c1", "#a0aec0",
	"#c53030", "#d53f8c", "#b7791f",
	"#1a202c", "#2d1b12", "#1c2a21", "#221c33", "#111111",
	"#e2e8f0", "#fbd38d", "#c6f6d5", "#e9d8fd", "#f7fafc",
}

var stickerPalette = []string{"⭐", "❤", "🌈", "✈", "🎯", "🌟", "🔥", "🎉", "🌸"}

var frameBorders = map[string]lipgloss.Border{
	"rounded": lipgloss.RoundedBorder(),
	"double":  lipgloss.DoubleBorder(),
	"thick":   lipgloss.ThickBorder(),
	"ascii":   lipgloss.NormalBorder(),
	"hidden":  lipgloss.HiddenBorder(),
}

var patternFills = map[string]string{
	"none":  " ",
	"dots":  "·",
	"stars": "✦",
	"waves": "~",
	"grid":  "+",
}

// cycleChoice returns the neighbor of current in choices, wrapping at
// both ends. A value not in choices is treated as the first one.
func cycleChoice(choices []string, current string, dir int) string {
	idx := 0
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(choices)) % len(choices)
	return choices[idx]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
