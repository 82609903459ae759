package filter

import "image/color"

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	// TransparentBlack is rgba(0,0,0,0), the CSS "transparent" keyword.
	TransparentBlack = Color{}

	// BackdropFallback fills an unavailable backdrop. It is black with
	// full alpha, so BackgroundAlpha extracts as opaque.
	BackdropFallback = Color{A: 255}

	// Black is opaque black, the default flood color.
	Black = Color{A: 255}

	// White is opaque white, the default lighting color.
	White = Color{R: 255, G: 255, B: 255, A: 255}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// WithOpacity returns c with its alpha multiplied by opacity.
// Opacity is clamped to [0, 1] and the result is rounded.
func (c Color) WithOpacity(opacity float64) Color {
	opacity = max(0, min(1, opacity))
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}
