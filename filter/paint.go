package filter

// Style selects which geometry a paint applies to.
type Style uint8

const (
	StyleFill Style = iota
	StyleStroke
	StyleFillAndStroke
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleFill:
		return "Fill"
	case StyleStroke:
		return "Stroke"
	case StyleFillAndStroke:
		return "FillAndStroke"
	default:
		return unknownStr
	}
}

// Paint describes how geometry is painted.
//
// A Paint with a Shader fills with the shader, otherwise with Color.
// ImageFilter, if set, post-processes everything drawn with the paint.
type Paint struct {
	Style       Style
	Color       Color
	Shader      *PerlinNoise
	ImageFilter Node
}

// NewColorPaint returns a fill paint with a solid color.
func NewColorPaint(c Color) *Paint {
	return &Paint{Style: StyleFill, Color: c}
}

// NewFilterPaint returns the paint the compiler produces: fill and stroke
// with the given image filter.
func NewFilterPaint(n Node) *Paint {
	return &Paint{Style: StyleFillAndStroke, Color: Black, ImageFilter: n}
}
