// Package raster maps screen cells to pixel shapes for graphical hosts.
// It has no graphics dependency so the mapping can be tested headless.
package raster

import (
	"image/color"

	"github.com/vovakirdan/block-arcade/internal/core"
)

// Palette maps core colors to RGB.
var Palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorRed:           {0xaa, 0x22, 0x22, 0xff},
	core.ColorGreen:         {0x22, 0xaa, 0x22, 0xff},
	core.ColorYellow:        {0xaa, 0x88, 0x22, 0xff},
	core.ColorBlue:          {0x22, 0x44, 0xaa, 0xff},
	core.ColorMagenta:       {0xaa, 0x22, 0xaa, 0xff},
	core.ColorCyan:          {0x22, 0xaa, 0xaa, 0xff},
	core.ColorWhite:         {0xcc, 0xcc, 0xcc, 0xff},
	core.ColorBrightRed:     {0xff, 0x0d, 0x72, 0xff},
	core.ColorBrightGreen:   {0x0d, 0xff, 0x72, 0xff},
	core.ColorBrightYellow:  {0xff, 0xe1, 0x38, 0xff},
	core.ColorBrightBlue:    {0x38, 0x77, 0xff, 0xff},
	core.ColorBrightMagenta: {0xf5, 0x38, 0xff, 0xff},
	core.ColorBrightCyan:    {0x0d, 0xc2, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x8e, 0x0d, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x80, 0xff},
	core.ColorDarkGray:      {0x40, 0x40, 0x40, 0xff},
	core.ColorPink:          {0xff, 0x6e, 0xc7, 0xff},
	core.ColorSky:           {0x6e, 0xc8, 0xff, 0xff},
}

// Background is the clear color behind every cell.
var Background = color.RGBA{0x10, 0x10, 0x14, 0xff}

// RGBA returns the display color for c.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := Palette[c]; ok {
		return rgba
	}
	return Palette[core.ColorDefault]
}

// Kind says how a shape is drawn.
type Kind int

const (
	Fill    Kind = iota // Solid rectangle
	Outline             // Rectangle border
	Dot                 // Filled circle inscribed in the rectangle
)

// Shape is one primitive in cell-relative units: (0,0) is the cell's top
// left corner and (1,1) its bottom right.
type Shape struct {
	Kind       Kind
	X, Y, W, H float32
	Color      core.Color
}

// Line thickness for box drawing, as a fraction of the cell.
const stroke = 0.15

// Shapes returns the primitives that draw cell c. ok is false for runes
// that are not block or box glyphs; hosts draw those as text.
func Shapes(c core.Cell) (shapes []Shape, ok bool) {
	fg := c.Color
	const mid = 0.5 - stroke/2

	switch c.Rune {
	case ' ':
		if c.Bg != core.ColorDefault {
			return []Shape{{Fill, 0, 0, 1, 1, c.Bg}}, true
		}
		return nil, true
	case '█':
		return []Shape{{Fill, 0, 0, 1, 1, fg}}, true
	case '▀':
		return halves(fg, c.Bg), true
	case '▄':
		return halves(c.Bg, fg), true
	case '░':
		return []Shape{{Outline, 0.1, 0.1, 0.8, 0.8, fg}}, true
	case '·':
		return []Shape{{Dot, 0.4, 0.4, 0.2, 0.2, fg}}, true
	case '●':
		return []Shape{{Dot, 0.15, 0.25, 0.7, 0.5, fg}}, true
	case '─':
		return []Shape{{Fill, 0, mid, 1, stroke, fg}}, true
	case '│':
		return []Shape{{Fill, mid, 0, stroke, 1, fg}}, true
	case '┌':
		return []Shape{{Fill, mid, mid, 1 - mid, stroke, fg}, {Fill, mid, mid, stroke, 1 - mid, fg}}, true
	case '┐':
		return []Shape{{Fill, 0, mid, mid + stroke, stroke, fg}, {Fill, mid, mid, stroke, 1 - mid, fg}}, true
	case '└':
		return []Shape{{Fill, mid, mid, 1 - mid, stroke, fg}, {Fill, mid, 0, stroke, mid + stroke, fg}}, true
	case '┘':
		return []Shape{{Fill, 0, mid, mid + stroke, stroke, fg}, {Fill, mid, 0, stroke, mid + stroke, fg}}, true
	}
	return nil, false
}

// halves fills the top and bottom half of a cell. Default colors are left
// as background.
func halves(top, bottom core.Color) []Shape {
	var out []Shape
	if top != core.ColorDefault {
		out = append(out, Shape{Fill, 0, 0, 1, 0.5, top})
	}
	if bottom != core.ColorDefault {
		out = append(out, Shape{Fill, 0, 0.5, 1, 0.5, bottom})
	}
	return out
}

// textFallback maps non-ASCII HUD glyphs to ASCII for bitmap fonts.
var textFallback = map[rune]rune{
	'←': '<',
	'→': '>',
	'↑': '^',
	'↓': 'v',
}

// Text returns the ASCII rune a host should print for r, or 0 to skip it.
func Text(r rune) rune {
	if f, ok := textFallback[r]; ok {
		return f
	}
	if r > ' ' && r < 0x7f {
		return r
	}
	return 0
}
