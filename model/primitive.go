package model

import "github.com/gogpu/svgfilter/geom"

// Kind identifies a filter primitive type.
type Kind uint8

const (
	KindBlend Kind = iota
	KindColorMatrix
	KindComponentTransfer
	KindComposite
	KindConvolveMatrix
	KindDiffuseLighting
	KindDisplacementMap
	KindFlood
	KindGaussianBlur
	KindImage
	KindMerge
	KindMorphology
	KindOffset
	KindSpecularLighting
	KindTile
	KindTurbulence
)

// kindNames maps Kind values to their element names.
var kindNames = [...]string{
	KindBlend:             "feBlend",
	KindColorMatrix:       "feColorMatrix",
	KindComponentTransfer: "feComponentTransfer",
	KindComposite:         "feComposite",
	KindConvolveMatrix:    "feConvolveMatrix",
	KindDiffuseLighting:   "feDiffuseLighting",
	KindDisplacementMap:   "feDisplacementMap",
	KindFlood:             "feFlood",
	KindGaussianBlur:      "feGaussianBlur",
	KindImage:             "feImage",
	KindMerge:             "feMerge",
	KindMorphology:        "feMorphology",
	KindOffset:            "feOffset",
	KindSpecularLighting:  "feSpecularLighting",
	KindTile:              "feTile",
	KindTurbulence:        "feTurbulence",
}

// String returns the SVG element name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// KindByElement returns the kind for an SVG element name.
func KindByElement(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Primitive is one filter primitive. The set of implementations is
// closed; switch on the concrete type to handle each kind.
type Primitive interface {
	Kind() Kind
	Common() *Base
}

// Base holds the attributes every primitive has.
type Base struct {
	// In names the input. Empty means the previous result, or
	// SourceGraphic for the first primitive.
	In string

	// Result names the output for later primitives. Empty leaves it
	// unnamed.
	Result string

	// Region attributes. Nil means unspecified.
	X, Y, Width, Height *Unit
}

// Common returns b.
func (b *Base) Common() *Base { return b }

// Binary is implemented by primitives with a second input.
type Binary interface {
	Primitive
	Input2() string
}

// BlendMode is the mode attribute of feBlend.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendModeNames = [...]string{
	BlendNormal:     "normal",
	BlendMultiply:   "multiply",
	BlendScreen:     "screen",
	BlendOverlay:    "overlay",
	BlendDarken:     "darken",
	BlendLighten:    "lighten",
	BlendColorDodge: "color-dodge",
	BlendColorBurn:  "color-burn",
	BlendHardLight:  "hard-light",
	BlendSoftLight:  "soft-light",
	BlendDifference: "difference",
	BlendExclusion:  "exclusion",
	BlendHue:        "hue",
	BlendSaturation: "saturation",
	BlendColor:      "color",
	BlendLuminosity: "luminosity",
}

// String returns the attribute spelling.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "normal"
}

// ParseBlendMode parses a mode attribute.
func ParseBlendMode(s string) (BlendMode, bool) {
	return lookup(blendModeNames[:], s, BlendNormal)
}

// Blend is feBlend. In is the foreground, In2 the background.
type Blend struct {
	Base
	In2  string
	Mode BlendMode
}

func (*Blend) Kind() Kind       { return KindBlend }
func (p *Blend) Input2() string { return p.In2 }

// ColorMatrixType is the type attribute of feColorMatrix.
type ColorMatrixType uint8

const (
	ColorMatrixMatrix ColorMatrixType = iota
	ColorMatrixSaturate
	ColorMatrixHueRotate
	ColorMatrixLuminanceToAlpha
)

var colorMatrixTypeNames = [...]string{
	ColorMatrixMatrix:           "matrix",
	ColorMatrixSaturate:         "saturate",
	ColorMatrixHueRotate:        "hueRotate",
	ColorMatrixLuminanceToAlpha: "luminanceToAlpha",
}

// ParseColorMatrixType parses a type attribute.
func ParseColorMatrixType(s string) (ColorMatrixType, bool) {
	return lookup(colorMatrixTypeNames[:], s, ColorMatrixMatrix)
}

// ColorMatrix is feColorMatrix.
type ColorMatrix struct {
	Base
	Type ColorMatrixType

	// Values is nil when the attribute is absent.
	Values []float64
}

func (*ColorMatrix) Kind() Kind { return KindColorMatrix }

// TransferType is the type attribute of feFuncR/G/B/A.
type TransferType uint8

const (
	TransferIdentity TransferType = iota
	TransferTable
	TransferDiscrete
	TransferLinear
	TransferGamma
)

var transferTypeNames = [...]string{
	TransferIdentity: "identity",
	TransferTable:    "table",
	TransferDiscrete: "discrete",
	TransferLinear:   "linear",
	TransferGamma:    "gamma",
}

// ParseTransferType parses a transfer function type.
func ParseTransferType(s string) (TransferType, bool) {
	return lookup(transferTypeNames[:], s, TransferIdentity)
}

// TransferFunc is one feFuncX child of feComponentTransfer.
type TransferFunc struct {
	Type        TransferType
	TableValues []float64

	Slope     float64 // default 1
	Intercept float64
	Amplitude float64 // default 1
	Exponent  float64 // default 1
	Offset    float64
}

// NewTransferFunc returns a transfer function with SVG defaults.
func NewTransferFunc(t TransferType) *TransferFunc {
	return &TransferFunc{Type: t, Slope: 1, Amplitude: 1, Exponent: 1}
}

// ComponentTransfer is feComponentTransfer. A nil function is identity.
type ComponentTransfer struct {
	Base
	FuncR, FuncG, FuncB, FuncA *TransferFunc
}

func (*ComponentTransfer) Kind() Kind { return KindComponentTransfer }

// CompositeOperator is the operator attribute of feComposite.
type CompositeOperator uint8

const (
	CompositeOver CompositeOperator = iota
	CompositeIn
	CompositeOut
	CompositeAtop
	CompositeXor
	CompositeArithmetic
)

var compositeOperatorNames = [...]string{
	CompositeOver:       "over",
	CompositeIn:         "in",
	CompositeOut:        "out",
	CompositeAtop:       "atop",
	CompositeXor:        "xor",
	CompositeArithmetic: "arithmetic",
}

// ParseCompositeOperator parses an operator attribute.
func ParseCompositeOperator(s string) (CompositeOperator, bool) {
	return lookup(compositeOperatorNames[:], s, CompositeOver)
}

// Composite is feComposite. In is the foreground, In2 the background.
type Composite struct {
	Base
	In2            string
	Operator       CompositeOperator
	K1, K2, K3, K4 float64
}

func (*Composite) Kind() Kind       { return KindComposite }
func (p *Composite) Input2() string { return p.In2 }

// EdgeMode is the edgeMode attribute of feConvolveMatrix.
type EdgeMode uint8

const (
	EdgeDuplicate EdgeMode = iota
	EdgeWrap
	EdgeNone
)

var edgeModeNames = [...]string{
	EdgeDuplicate: "duplicate",
	EdgeWrap:      "wrap",
	EdgeNone:      "none",
}

// ParseEdgeMode parses an edgeMode attribute.
func ParseEdgeMode(s string) (EdgeMode, bool) {
	return lookup(edgeModeNames[:], s, EdgeDuplicate)
}

// ConvolveMatrix is feConvolveMatrix.
type ConvolveMatrix struct {
	Base

	// Order defaults to 3x3.
	Order        OptionalNumbers
	KernelMatrix []float64

	// Divisor 0 means the sum of the kernel.
	Divisor float64
	Bias    float64

	// TargetX and TargetY default to the kernel center.
	TargetX, TargetY *int

	EdgeMode      EdgeMode
	PreserveAlpha bool
}

func (*ConvolveMatrix) Kind() Kind { return KindConvolveMatrix }

// DiffuseLighting is feDiffuseLighting.
type DiffuseLighting struct {
	Base
	LightingColor   ColorValue // default white
	SurfaceScale    float64    // default 1
	DiffuseConstant float64    // default 1

	// Light is nil when the element has no light source child.
	Light LightSource
}

// NewDiffuseLighting returns a feDiffuseLighting with SVG defaults.
func NewDiffuseLighting(light LightSource) *DiffuseLighting {
	return &DiffuseLighting{SurfaceScale: 1, DiffuseConstant: 1, Light: light}
}

func (*DiffuseLighting) Kind() Kind { return KindDiffuseLighting }

// ChannelSelector is xChannelSelector or yChannelSelector.
// The zero value is A, the SVG default.
type ChannelSelector uint8

const (
	ChannelA ChannelSelector = iota
	ChannelR
	ChannelG
	ChannelB
)

// ParseChannelSelector parses a channel selector.
func ParseChannelSelector(s string) (ChannelSelector, bool) {
	switch s {
	case "R":
		return ChannelR, true
	case "G":
		return ChannelG, true
	case "B":
		return ChannelB, true
	case "A":
		return ChannelA, true
	default:
		return ChannelA, false
	}
}

// DisplacementMap is feDisplacementMap. In is displaced by In2.
type DisplacementMap struct {
	Base
	In2                string
	Scale              float64
	XChannel, YChannel ChannelSelector
}

func (*DisplacementMap) Kind() Kind       { return KindDisplacementMap }
func (p *DisplacementMap) Input2() string { return p.In2 }

// Flood is feFlood.
type Flood struct {
	Base
	FloodColor   ColorValue // default black
	FloodOpacity float64    // default 1
}

// NewFlood returns a feFlood with SVG defaults.
func NewFlood() *Flood {
	return &Flood{FloodOpacity: 1}
}

func (*Flood) Kind() Kind { return KindFlood }

// GaussianBlur is feGaussianBlur.
type GaussianBlur struct {
	Base
	StdDeviation OptionalNumbers
}

func (*GaussianBlur) Kind() Kind { return KindGaussianBlur }

// Image is feImage.
type Image struct {
	Base
	Href        string
	AspectRatio geom.AspectRatio
}

func (*Image) Kind() Kind { return KindImage }

// MergeNode is one feMergeNode child.
type MergeNode struct {
	In string
}

// Merge is feMerge.
type Merge struct {
	Base
	Nodes []MergeNode
}

func (*Merge) Kind() Kind { return KindMerge }

// MorphologyOperator is the operator attribute of feMorphology.
type MorphologyOperator uint8

const (
	MorphologyErode MorphologyOperator = iota
	MorphologyDilate
)

// ParseMorphologyOperator parses an operator attribute.
func ParseMorphologyOperator(s string) (MorphologyOperator, bool) {
	switch s {
	case "erode":
		return MorphologyErode, true
	case "dilate":
		return MorphologyDilate, true
	default:
		return MorphologyErode, false
	}
}

// Morphology is feMorphology.
type Morphology struct {
	Base
	Operator MorphologyOperator
	Radius   OptionalNumbers
}

func (*Morphology) Kind() Kind { return KindMorphology }

// Offset is feOffset.
type Offset struct {
	Base
	Dx, Dy Unit
}

func (*Offset) Kind() Kind { return KindOffset }

// SpecularLighting is feSpecularLighting.
type SpecularLighting struct {
	Base
	LightingColor    ColorValue // default white
	SurfaceScale     float64    // default 1
	SpecularConstant float64    // default 1
	SpecularExponent float64    // default 1

	Light LightSource
}

// NewSpecularLighting returns a feSpecularLighting with SVG defaults.
func NewSpecularLighting(light LightSource) *SpecularLighting {
	return &SpecularLighting{SurfaceScale: 1, SpecularConstant: 1, SpecularExponent: 1, Light: light}
}

func (*SpecularLighting) Kind() Kind { return KindSpecularLighting }

// Tile is feTile.
type Tile struct {
	Base
}

func (*Tile) Kind() Kind { return KindTile }

// TurbulenceType is the type attribute of feTurbulence.
// The zero value is turbulence, the SVG default.
type TurbulenceType uint8

const (
	TurbulenceTurbulence TurbulenceType = iota
	TurbulenceFractalNoise
)

// ParseTurbulenceType parses a type attribute.
func ParseTurbulenceType(s string) (TurbulenceType, bool) {
	switch s {
	case "turbulence":
		return TurbulenceTurbulence, true
	case "fractalNoise":
		return TurbulenceFractalNoise, true
	default:
		return TurbulenceTurbulence, false
	}
}

// Turbulence is feTurbulence.
type Turbulence struct {
	Base
	Type          TurbulenceType
	BaseFrequency OptionalNumbers
	NumOctaves    int // default 1
	Seed          float64
	StitchTiles   bool
}

// NewTurbulence returns a feTurbulence with SVG defaults.
func NewTurbulence() *Turbulence {
	return &Turbulence{NumOctaves: 1}
}

func (*Turbulence) Kind() Kind { return KindTurbulence }

func lookup[T ~uint8](names []string, s string, def T) (T, bool) {
	for i, n := range names {
		if n == s {
			return T(i), true
		}
	}
	return def, false
}
