package filter

import (
	"image"

	"github.com/gogpu/svgfilter/geom"
)

// Image is a decoded raster image handed to the backend.
type Image struct {
	Source image.Image
}

// NewImage wraps img.
func NewImage(img image.Image) *Image {
	return &Image{Source: img}
}

// Width returns the natural width in pixels.
func (i *Image) Width() int {
	if i == nil || i.Source == nil {
		return 0
	}
	return i.Source.Bounds().Dx()
}

// Height returns the natural height in pixels.
func (i *Image) Height() int {
	if i == nil || i.Source == nil {
		return 0
	}
	return i.Source.Bounds().Dy()
}

// Bounds returns the natural size as a rectangle at the origin.
func (i *Image) Bounds() geom.Rect {
	return geom.XYWH(0, 0, float64(i.Width()), float64(i.Height()))
}

// Picture is a recorded snapshot of vector content.
//
// The compiler never inspects Payload. Backends that can replay recorded
// content type-assert it to their own representation.
type Picture struct {
	// Cull is the bounds of the recorded content in device space.
	Cull geom.Rect

	// Transform maps the content's own coordinates to device space.
	Transform geom.Matrix

	Payload any
}
