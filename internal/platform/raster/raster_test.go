package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/block-arcade/internal/core"
)

func TestShapesBlocks(t *testing.T) {
	shapes, ok := Shapes(core.Cell{Rune: '█', Color: core.ColorBrightRed})
	require.True(t, ok)
	assert.Equal(t, []Shape{{Fill, 0, 0, 1, 1, core.ColorBrightRed}}, shapes)

	// Upper half block: fg on top, bg below
	shapes, ok = Shapes(core.Cell{Rune: '▀', Color: core.ColorBrightCyan, Bg: core.ColorBrightGreen})
	require.True(t, ok)
	assert.Equal(t, []Shape{
		{Fill, 0, 0, 1, 0.5, core.ColorBrightCyan},
		{Fill, 0, 0.5, 1, 0.5, core.ColorBrightGreen},
	}, shapes)

	// Lower half block with no background fills only the bottom
	shapes, ok = Shapes(core.Cell{Rune: '▄', Color: core.ColorDarkGray})
	require.True(t, ok)
	assert.Equal(t, []Shape{{Fill, 0, 0.5, 1, 0.5, core.ColorDarkGray}}, shapes)
}

func TestShapesSpace(t *testing.T) {
	shapes, ok := Shapes(core.Cell{Rune: ' '})
	assert.True(t, ok)
	assert.Empty(t, shapes)

	shapes, ok = Shapes(core.Cell{Rune: ' ', Bg: core.ColorSky})
	assert.True(t, ok)
	assert.Equal(t, []Shape{{Fill, 0, 0, 1, 1, core.ColorSky}}, shapes)
}

func TestShapesBoxDrawing(t *testing.T) {
	for _, r := range "─│┌┐└┘" {
		shapes, ok := Shapes(core.Cell{Rune: r, Color: core.ColorGray})
		assert.True(t, ok, "rune %q", r)
		assert.NotEmpty(t, shapes, "rune %q", r)
		for _, s := range shapes {
			assert.Equal(t, Fill, s.Kind)
			assert.LessOrEqual(t, s.X+s.W, float32(1.0001), "rune %q overflows horizontally", r)
			assert.LessOrEqual(t, s.Y+s.H, float32(1.0001), "rune %q overflows vertically", r)
		}
	}
}

func TestShapesText(t *testing.T) {
	_, ok := Shapes(core.Cell{Rune: 'S'})
	assert.False(t, ok)
}

func TestText(t *testing.T) {
	tests := []struct {
		in       rune
		expected rune
	}{
		{'A', 'A'},
		{'7', '7'},
		{'←', '<'},
		{'→', '>'},
		{'↑', '^'},
		{'↓', 'v'},
		{' ', 0},
		{'é', 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Text(tt.in), "Text(%q)", tt.in)
	}
}

func TestRGBA(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorSky; c++ {
		_, ok := Palette[c]
		assert.True(t, ok, "color %d missing from palette", c)
	}
	assert.Equal(t, Palette[core.ColorDefault], RGBA(core.Color(200)))
}
