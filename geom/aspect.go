package geom

import "strings"

// Align selects the alignment part of a preserveAspectRatio value.
// The zero value is xMidYMid, the SVG default.
type Align uint8

const (
	AlignXMidYMid Align = iota
	AlignNone
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

// alignNames maps Align values to their attribute spelling.
var alignNames = [...]string{
	AlignXMidYMid: "xMidYMid",
	AlignNone:     "none",
	AlignXMinYMin: "xMinYMin",
	AlignXMidYMin: "xMidYMin",
	AlignXMaxYMin: "xMaxYMin",
	AlignXMinYMid: "xMinYMid",
	AlignXMaxYMid: "xMaxYMid",
	AlignXMinYMax: "xMinYMax",
	AlignXMidYMax: "xMidYMax",
	AlignXMaxYMax: "xMaxYMax",
}

// String returns the attribute spelling of the alignment.
func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "Unknown"
}

// factors returns the fraction of free space placed before the content
// along each axis.
func (a Align) factors() (fx, fy float64) {
	switch a {
	case AlignXMinYMin:
		return 0, 0
	case AlignXMidYMin:
		return 0.5, 0
	case AlignXMaxYMin:
		return 1, 0
	case AlignXMinYMid:
		return 0, 0.5
	case AlignXMaxYMid:
		return 1, 0.5
	case AlignXMinYMax:
		return 0, 1
	case AlignXMidYMax:
		return 0.5, 1
	case AlignXMaxYMax:
		return 1, 1
	default:
		return 0.5, 0.5
	}
}

// AspectRatio is a parsed preserveAspectRatio attribute.
// The zero value is "xMidYMid meet".
type AspectRatio struct {
	Align Align
	Slice bool
}

// ParseAspectRatio parses a preserveAspectRatio attribute value.
// Unknown tokens are ignored and fall back to the default.
func ParseAspectRatio(s string) AspectRatio {
	var ar AspectRatio
	for _, tok := range strings.Fields(s) {
		switch tok {
		case "defer":
		case "meet":
			ar.Slice = false
		case "slice":
			ar.Slice = true
		default:
			for i, name := range alignNames {
				if tok == name {
					ar.Align = Align(i)
				}
			}
		}
	}
	return ar
}

// Fit places a source rectangle of the given size inside dst according
// to the aspect ratio policy and returns the destination rectangle.
// With AlignNone the source is stretched to dst. A degenerate source
// also yields dst.
func (ar AspectRatio) Fit(src, dst Rect) Rect {
	sw, sh := src.Width(), src.Height()
	if ar.Align == AlignNone || sw <= 0 || sh <= 0 {
		return dst
	}

	sx := dst.Width() / sw
	sy := dst.Height() / sh
	s := min(sx, sy)
	if ar.Slice {
		s = max(sx, sy)
	}

	w, h := sw*s, sh*s
	fx, fy := ar.Align.factors()
	x := dst.MinX + (dst.Width()-w)*fx
	y := dst.MinY + (dst.Height()-h)*fy
	return XYWH(x, y, w, h)
}
