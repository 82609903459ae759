package filter

import "github.com/gogpu/svgfilter/geom"

// CropRect limits a node's output to a device-space rectangle.
// A nil *CropRect means the node is unbounded.
type CropRect struct {
	Rect geom.Rect
}

// NewCropRect returns a crop rectangle for r.
func NewCropRect(r geom.Rect) *CropRect {
	return &CropRect{Rect: r}
}

// TileMode specifies how a filter samples pixels outside its input bounds.
type TileMode uint8

const (
	// TileClamp extends edge pixels outward.
	TileClamp TileMode = iota

	// TileRepeat tiles the input.
	TileRepeat

	// TileMirror tiles with alternating mirrored copies.
	TileMirror

	// TileDecal samples transparent black outside the bounds.
	TileDecal
)

// String returns the name of the tile mode.
func (m TileMode) String() string {
	switch m {
	case TileClamp:
		return "Clamp"
	case TileRepeat:
		return "Repeat"
	case TileMirror:
		return "Mirror"
	case TileDecal:
		return "Decal"
	default:
		return unknownStr
	}
}

// ColorChannel selects one channel of an RGBA pixel.
type ColorChannel uint8

const (
	ChannelR ColorChannel = iota
	ChannelG
	ChannelB
	ChannelA
)

// String returns the single-letter channel name.
func (c ColorChannel) String() string {
	switch c {
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	case ChannelA:
		return "A"
	default:
		return unknownStr
	}
}

// MorphologyOp selects erosion or dilation.
type MorphologyOp uint8

const (
	Erode MorphologyOp = iota
	Dilate
)

// String returns the operator name.
func (op MorphologyOp) String() string {
	if op == Dilate {
		return "Dilate"
	}
	return "Erode"
}

// FilterQuality is the sampling quality for image nodes.
type FilterQuality uint8

const (
	QualityNone FilterQuality = iota
	QualityLow
	QualityMedium
	QualityHigh
)

// Kernel describes a matrix convolution.
// Weights are stored row-major, Width*Height entries.
type Kernel struct {
	Width, Height int
	Weights       []float32

	// Gain multiplies the weighted sum; Bias is added afterwards, on the
	// 0-255 scale.
	Gain, Bias float32

	// OffsetX and OffsetY locate the target pixel inside the kernel.
	OffsetX, OffsetY int

	Tile          TileMode
	ConvolveAlpha bool
}

const unknownStr = "Unknown"
