package drawq

import (
	"image/color"

	"github.com/chewxy/math32"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// Common colors.
var (
	Black = RGBA{R: 0, G: 0, B: 0, A: 1}
	White = RGBA{R: 1, G: 1, B: 1, A: 1}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// NewRGBA creates a color from RGBA components.
func NewRGBA(r, g, b, a float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// WithAlpha returns the color with its alpha multiplied by a.
func (c RGBA) WithAlpha(a float32) RGBA {
	c.A *= a
	return c
}

// Mul returns the component-wise product of two colors.
func (c RGBA) Mul(o RGBA) RGBA {
	return RGBA{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// c.RGBA() returns alpha-premultiplied components.
	return RGBA{
		R: float32(r) / float32(a),
		G: float32(g) / float32(a),
		B: float32(b) / float32(a),
		A: float32(a) / 65535,
	}
}

func clamp255(v float32) float32 {
	return math32.Max(0, math32.Min(255, math32.Round(v)))
}
