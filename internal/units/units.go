// Package units converts SVG lengths into device-space values.
package units

import (
	"math"

	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/model"
)

// Axis tells which reference length a value is relative to.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
	// Other uses the normalized diagonal.
	Other
)

// CSS absolute unit ratios at 96 dpi.
const (
	DPI      = 96.0
	FontSize = 16.0 // px per em
)

// Resolver converts units for one element.
type Resolver struct {
	// BBox is the element's bounding box in device space.
	BBox geom.Rect

	// Viewport is the reference for user-space percentages.
	Viewport geom.Rect

	Mode model.CoordinateUnits
}

// Diagonal returns sqrt(w²+h²)/sqrt(2) of r.
func Diagonal(r geom.Rect) float64 {
	return r.Diagonal()
}

func reference(r geom.Rect, axis Axis) float64 {
	switch axis {
	case Horizontal:
		return r.Width()
	case Vertical:
		return r.Height()
	default:
		return r.Diagonal()
	}
}

// Length converts a non-percentage unit to pixels.
func Length(u model.Unit) float64 {
	v := u.Value
	switch u.Type {
	case model.UnitEm:
		return v * FontSize
	case model.UnitEx:
		return v * FontSize / 2
	case model.UnitIn:
		return v * DPI
	case model.UnitCm:
		return v * DPI / 2.54
	case model.UnitMm:
		return v * DPI / 25.4
	case model.UnitPt:
		return v * DPI / 72
	case model.UnitPc:
		return v * DPI / 6
	default:
		return v
	}
}

// Value converts u to a device-space magnitude along axis.
//
// In user space, lengths convert directly and percentages are relative to
// the viewport. In object bounding box mode, lengths are fractions of the
// bounding box and percentages are value/100 fractions of it.
func (r *Resolver) Value(u model.Unit, axis Axis) float64 {
	if r.Mode == model.ObjectBoundingBox {
		frac := Length(u)
		if u.IsPercent() {
			frac = u.Value / 100
		}
		return frac * reference(r.BBox, axis)
	}
	if u.IsPercent() {
		return u.Value / 100 * reference(r.Viewport, axis)
	}
	return Length(u)
}

// Position converts a coordinate. It is Value plus the bounding box
// origin in object bounding box mode.
func (r *Resolver) Position(u model.Unit, axis Axis) float64 {
	v := r.Value(u, axis)
	if r.Mode == model.ObjectBoundingBox {
		switch axis {
		case Horizontal:
			v += r.BBox.MinX
		case Vertical:
			v += r.BBox.MinY
		}
	}
	return v
}

// Rect resolves a region from its four attributes. A nil attribute takes
// the corresponding edge or size of fallback. It reports false when the
// resulting width or height is not positive.
func (r *Resolver) Rect(x, y, w, h *model.Unit, fallback geom.Rect) (geom.Rect, bool) {
	rx, ry := fallback.MinX, fallback.MinY
	rw, rh := fallback.Width(), fallback.Height()
	if x != nil {
		rx = r.Position(*x, Horizontal)
	}
	if y != nil {
		ry = r.Position(*y, Vertical)
	}
	if w != nil {
		rw = r.Value(*w, Horizontal)
	}
	if h != nil {
		rh = r.Value(*h, Vertical)
	}
	if !(rw > 0) || !(rh > 0) || math.IsInf(rw, 0) || math.IsInf(rh, 0) {
		return geom.Rect{}, false
	}
	return geom.XYWH(rx, ry, rw, rh), true
}

// Scale multiplies a scalar attribute by the bounding box reference
// length in object bounding box mode and returns it unchanged otherwise.
func (r *Resolver) Scale(v float64, axis Axis) float64 {
	if r.Mode == model.ObjectBoundingBox {
		return v * reference(r.BBox, axis)
	}
	return v
}

// Point scales a light position: x by width, y by height, z by the
// diagonal, in object bounding box mode. The bounding box origin is not
// added, matching how lighting primitives treat their coordinates.
func (r *Resolver) Point(x, y, z float64) geom.Point3 {
	return geom.Point3{X: r.Scale(x, Horizontal), Y: r.Scale(y, Vertical), Z: r.Scale(z, Other)}
}

// WithMode returns a copy of r using mode.
func (r Resolver) WithMode(mode model.CoordinateUnits) *Resolver {
	r.Mode = mode
	return &r
}
