package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// RGB is a frontend-neutral color
type RGB struct {
	R, G, B uint8
}

// Hex builds an RGB from 0xRRGGBB
func Hex(v uint32) RGB {
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// clamp converts float to uint8 with saturation
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Lerp blends toward o by t in [0, 1]
func (c RGB) Lerp(o RGB, t float64) RGB {
	return RGB{
		R: clamp(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		G: clamp(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		B: clamp(float64(c.B) + (float64(o.B)-float64(c.B))*t),
	}
}

// TCell converts to a truecolor terminal color
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// RGBA converts to an image color with the given alpha in [0, 1]
// Components are premultiplied as image/color requires
func (c RGB) RGBA(alpha float64) color.RGBA {
	a := clamp(alpha * 255)
	f := float64(a) / 255
	return color.RGBA{
		R: clamp(float64(c.R) * f),
		G: clamp(float64(c.G) * f),
		B: clamp(float64(c.B) * f),
		A: a,
	}
}
