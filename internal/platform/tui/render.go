package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/block-arcade/internal/core"
)

// ansiColors maps core.Color to terminal palette indices.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
	core.ColorPink:          "213",
	core.ColorSky:           "117",
}

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

// styleFor returns the lipgloss style for a color pair, building and
// caching it on first use. Only called from the render goroutine.
func styleFor(cache map[styleKey]lipgloss.Style, k styleKey) lipgloss.Style {
	if s, ok := cache[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := ansiColors[k.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := ansiColors[k.bg]; ok {
		s = s.Background(c)
	}
	cache[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	cache := make(map[styleKey]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := styleKey{fg: cell.Color, bg: cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (styleKey{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(cache, key).Render(run.String()))
		}
	}
	return sb.String()
}
