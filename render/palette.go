package render

import (
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// grayMap is a linear two-point grayscale palette.ColorMap. The value
// range is set by the renderer before drawing.
type grayMap struct {
	min, max float64
	alpha    float64
	from, to float64 // gray levels at min and max, in [0, 1]
}

// Greys returns the default colormap: white at the low end fading to
// black at the high end.
func Greys() palette.ColorMap {
	return &grayMap{alpha: 1, from: 1, to: 0}
}

// Gray returns the inverse ramp, black fading to white, for callers that
// prefer dark backgrounds.
func Gray() palette.ColorMap {
	return &grayMap{alpha: 1, from: 0, to: 1}
}

func (g *grayMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < g.min:
		return nil, palette.ErrUnderflow
	case v > g.max:
		return nil, palette.ErrOverflow
	}

	t := 0.0
	if g.max > g.min {
		t = (v - g.min) / (g.max - g.min)
	}
	return g.colorAt(t), nil
}

func (g *grayMap) colorAt(t float64) color.Color {
	level := g.from + t*(g.to-g.from)
	y := uint8(math.Round(level * 255))
	a := uint8(math.Round(g.alpha * 255))
	return color.NRGBA{R: y, G: y, B: y, A: a}
}

func (g *grayMap) Min() float64       { return g.min }
func (g *grayMap) SetMin(v float64)   { g.min = v }
func (g *grayMap) Max() float64       { return g.max }
func (g *grayMap) SetMax(v float64)   { g.max = v }
func (g *grayMap) Alpha() float64     { return g.alpha }
func (g *grayMap) SetAlpha(a float64) { g.alpha = a }

// Palette discretizes the ramp into the given number of colors.
func (g *grayMap) Palette(colors int) palette.Palette {
	if colors < 1 {
		colors = 1
	}

	cols := make([]color.Color, colors)
	for i := range cols {
		t := 0.0
		if colors > 1 {
			t = float64(i) / float64(colors-1)
		}
		cols[i] = g.colorAt(t)
	}
	return rampPalette(cols)
}

type rampPalette []color.Color

func (p rampPalette) Colors() []color.Color { return p }

// colorMapByName resolves a colormap name, case-insensitively. Unknown
// names fall back to the default greys ramp rather than failing the plot.
func colorMapByName(name string) palette.ColorMap {
	switch strings.ToLower(name) {
	case "", "greys":
		return Greys()
	case "gray", "grey":
		return Gray()
	case "kindlmann":
		return moreland.Kindlmann()
	case "blackbody", "extendedblackbody":
		return moreland.ExtendedBlackBody()
	case "bluered":
		return moreland.SmoothBlueRed()
	default:
		return Greys()
	}
}
