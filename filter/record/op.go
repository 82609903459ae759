package record

import (
	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
)

// Kind identifies the operation an Op performs.
type Kind uint8

const (
	KindBlend Kind = iota
	KindArithmetic
	KindColorFilter
	KindMerge
	KindBlur
	KindMorphology
	KindOffset
	KindDisplacementMap
	KindDistantLitDiffuse
	KindPointLitDiffuse
	KindSpotLitDiffuse
	KindDistantLitSpecular
	KindPointLitSpecular
	KindSpotLitSpecular
	KindMatrixConvolution
	KindTile
	KindImage
	KindPicture
	KindPaint
)

// kindNames maps Kind values to their string representation.
var kindNames = [...]string{
	KindBlend:              "Blend",
	KindArithmetic:         "Arithmetic",
	KindColorFilter:        "ColorFilter",
	KindMerge:              "Merge",
	KindBlur:               "Blur",
	KindMorphology:         "Morphology",
	KindOffset:             "Offset",
	KindDisplacementMap:    "DisplacementMap",
	KindDistantLitDiffuse:  "DistantLitDiffuse",
	KindPointLitDiffuse:    "PointLitDiffuse",
	KindSpotLitDiffuse:     "SpotLitDiffuse",
	KindDistantLitSpecular: "DistantLitSpecular",
	KindPointLitSpecular:   "PointLitSpecular",
	KindSpotLitSpecular:    "SpotLitSpecular",
	KindMatrixConvolution:  "MatrixConvolution",
	KindTile:               "Tile",
	KindImage:              "Image",
	KindPicture:            "Picture",
	KindPaint:              "Paint",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Ref is a reference to an op in a Factory's arena.
type Ref uint32

// InvalidRef marks an input that refers to the filtered content itself.
const InvalidRef Ref = ^Ref(0)

// IsValid returns true if the reference is not InvalidRef.
func (r Ref) IsValid() bool {
	return r != InvalidRef
}

// Op is one recorded operation.
type Op struct {
	Kind Kind

	// Inputs lists the input ops in factory argument order. For binary
	// kinds this is background first, then foreground (Blend, Arithmetic)
	// or displacement first, then color (DisplacementMap).
	Inputs []Ref

	// Crop is nil when the op is unbounded.
	Crop *geom.Rect

	// Params holds the kind-specific parameters, one of the *Params types
	// in this package.
	Params any
}

// BlendParams are the parameters of a KindBlend op.
type BlendParams struct {
	Mode filter.BlendMode
}

// ArithmeticParams are the parameters of a KindArithmetic op.
type ArithmeticParams struct {
	K1, K2, K3, K4 float32
	EnforcePM      bool
}

// ColorFilterParams are the parameters of a KindColorFilter op.
type ColorFilterParams struct {
	Filter filter.ColorFilter
}

// BlurParams are the parameters of a KindBlur op.
type BlurParams struct {
	SigmaX, SigmaY float32
}

// MorphologyParams are the parameters of a KindMorphology op.
type MorphologyParams struct {
	Op               filter.MorphologyOp
	RadiusX, RadiusY int
}

// OffsetParams are the parameters of a KindOffset op.
type OffsetParams struct {
	DX, DY float32
}

// DisplacementParams are the parameters of a KindDisplacementMap op.
type DisplacementParams struct {
	XChannel, YChannel filter.ColorChannel
	Scale              float32
}

// LightingParams are the parameters shared by the six lighting kinds.
// Fields that do not apply to a kind are left zero.
type LightingParams struct {
	Direction geom.Point3
	Location  geom.Point3
	Target    geom.Point3

	SpecularExponent float32
	CutoffAngle      float32

	Color        filter.Color
	SurfaceScale float32

	// Constant is kd for diffuse kinds and ks for specular kinds.
	Constant  float32
	Shininess float32
}

// ConvolutionParams are the parameters of a KindMatrixConvolution op.
type ConvolutionParams struct {
	Kernel filter.Kernel
}

// TileParams are the parameters of a KindTile op.
type TileParams struct {
	Src, Dst geom.Rect
}

// ImageParams are the parameters of a KindImage op.
type ImageParams struct {
	Image   *filter.Image
	Src     geom.Rect
	Dst     geom.Rect
	Quality filter.FilterQuality
}

// PictureParams are the parameters of a KindPicture op.
type PictureParams struct {
	Picture *filter.Picture
	Cull    geom.Rect
}

// PaintParams are the parameters of a KindPaint op.
type PaintParams struct {
	Paint *filter.Paint
}
