package core

import "image/color"

// Color is an 8-bit-per-channel RGB color
type Color struct {
	R, G, B uint8
}

// Black is the background color for rays that hit nothing
var Black = Color{}

// NewColor creates a color from channel values in [0, 255].
// Values above 255 saturate and fractions are truncated.
func NewColor(r, g, b float64) Color {
	return Color{R: channel(r), G: channel(g), B: channel(b)}
}

// ColorFromVec3 maps X, Y, Z onto R, G, B using the same rules as NewColor
func ColorFromVec3(v Vec3) Color {
	return NewColor(v.X, v.Y, v.Z)
}

// RGBA converts the color to an opaque image/color value
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func channel(v float64) uint8 {
	// NaN compares false on both sides and lands on 0
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
