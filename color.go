package conic

import (
	"image/color"
	"strconv"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = RGBA{0, 0, 0, 0}
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Red         = RGBA{1, 0, 0, 1}
	Green       = RGBA{0, 1, 0, 1}
	Blue        = RGBA{0, 0, 1, 1}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// Hex creates a color from a hex string such as "#RRGGBB" or
// "#RRGGBBAA". The leading '#' is optional. Invalid input yields
// opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 && len(hex) != 8 {
		return Black
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Black
	}
	a := uint64(255)
	if len(hex) == 8 {
		a = v & 0xff
		v >>= 8
	}
	return RGBA{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: float64(a) / 255,
	}
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

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(d RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + t*(d.R-c.R),
		G: c.G + t*(d.G-c.G),
		B: c.B + t*(d.B-c.B),
		A: c.A + t*(d.A-c.A),
	}
}

// rgba8 extracts the 8-bit channel values in R, G, B, A order.
// The sampler blends on these integers so the output is stable across
// platforms and matches the row-major byte layout of Pixmap.
func (c RGBA) rgba8() [4]int {
	return [4]int{
		int(clamp255(c.R * 255)),
		int(clamp255(c.G * 255)),
		int(clamp255(c.B * 255)),
		int(clamp255(c.A * 255)),
	}
}

// gray8 returns the 8-bit intensity used on the single-channel path.
// The gray value is the red channel: achromatic colors have equal
// channels, so red stands in for intensity.
func (c RGBA) gray8() int {
	return int(clamp255(c.R * 255))
}

// clamp255 clamps a value to the [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
