package model

import "github.com/gogpu/svgfilter/filter"

// ColorKind tells how a color attribute was specified.
type ColorKind uint8

const (
	// ColorDefault means the attribute was absent.
	ColorDefault ColorKind = iota

	// ColorRGB is an explicit color.
	ColorRGB

	// ColorCurrent is the keyword currentColor.
	ColorCurrent

	// ColorUnsupported is a paint that cannot be used as a filter color,
	// such as a gradient reference.
	ColorUnsupported
)

// ColorValue is a flood-color or lighting-color attribute.
type ColorValue struct {
	Kind ColorKind
	RGB  filter.Color
}

// RGB returns an explicit color value.
func RGB(c filter.Color) ColorValue {
	return ColorValue{Kind: ColorRGB, RGB: c}
}

// CurrentColor is the currentColor keyword.
var CurrentColor = ColorValue{Kind: ColorCurrent}

// Resolve returns the concrete color, using current for currentColor and
// def when the attribute was absent. It reports false for unsupported
// paints.
func (v ColorValue) Resolve(current, def filter.Color) (filter.Color, bool) {
	switch v.Kind {
	case ColorDefault:
		return def, true
	case ColorRGB:
		return v.RGB, true
	case ColorCurrent:
		return current, true
	default:
		return filter.Color{}, false
	}
}
