package record

import (
	"errors"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
)

// ErrForeignNode is returned when an input node was built by another factory.
var ErrForeignNode = errors.New("record: node belongs to another factory")

func init() {
	filter.Register("record", func() filter.Factory {
		return NewFactory()
	})
}

// Node is the filter.Node handed out by a Factory.
type Node struct {
	graph uuid.UUID
	ref   Ref
	kind  Kind
}

// Op returns the operation name.
func (n *Node) Op() string { return n.kind.String() }

// Ref returns the node's index in its factory's arena.
func (n *Node) Ref() Ref { return n.ref }

// Factory records filter graph construction.
type Factory struct {
	id uuid.UUID

	mu  sync.Mutex
	ops []Op
}

var _ filter.Factory = (*Factory)(nil)

// NewFactory creates an empty recording factory with a fresh graph ID.
func NewFactory() *Factory {
	return &Factory{
		id:  uuid.New(),
		ops: make([]Op, 0, 16),
	}
}

// ID returns the graph identity shown in dumps.
func (f *Factory) ID() uuid.UUID { return f.id }

// Len returns the number of recorded ops.
func (f *Factory) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ops)
}

// Op returns the op at ref.
func (f *Factory) Op(ref Ref) (Op, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if int(ref) >= len(f.ops) {
		return Op{}, false
	}
	return f.ops[ref], true
}

// Lookup returns the op recorded for n.
func (f *Factory) Lookup(n filter.Node) (Op, bool) {
	rn, ok := n.(*Node)
	if !ok || rn.graph != f.id {
		return Op{}, false
	}
	return f.Op(rn.ref)
}

// Ops returns a copy of all recorded ops in construction order.
func (f *Factory) Ops() []Op {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Op, len(f.ops))
	copy(out, f.ops)
	return out
}

// Reset discards all recorded ops. Nodes handed out earlier become invalid.
func (f *Factory) Reset() {
	f.mu.Lock()
	f.ops = f.ops[:0]
	f.id = uuid.New()
	f.mu.Unlock()
}

func (f *Factory) add(kind Kind, inputs []Ref, crop *filter.CropRect, params any) *Node {
	op := Op{Kind: kind, Inputs: inputs, Params: params}
	if crop != nil {
		r := crop.Rect
		op.Crop = &r
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, op)
	// #nosec G115 -- arena size is bounded by the primitive count, well under uint32 max
	return &Node{graph: f.id, ref: Ref(uint32(len(f.ops) - 1)), kind: kind}
}

// refOf maps an input node to its arena reference. A nil node refers to
// the filtered content.
func (f *Factory) refOf(n filter.Node) (Ref, error) {
	if n == nil {
		return InvalidRef, nil
	}
	rn, ok := n.(*Node)
	if !ok || rn == nil {
		return InvalidRef, ErrForeignNode
	}
	f.mu.Lock()
	id, size := f.id, len(f.ops)
	f.mu.Unlock()
	if rn.graph != id || int(rn.ref) >= size {
		return InvalidRef, ErrForeignNode
	}
	return rn.ref, nil
}

func (f *Factory) refsOf(nodes ...filter.Node) ([]Ref, error) {
	refs := make([]Ref, len(nodes))
	for i, n := range nodes {
		r, err := f.refOf(n)
		if err != nil {
			return nil, err
		}
		refs[i] = r
	}
	return refs, nil
}

func finite(vals ...float32) bool {
	for _, v := range vals {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func finitePoint(p geom.Point3) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsNaN(p.Z) &&
		!math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsInf(p.Z, 0)
}

// Blend implements filter.Factory.
func (f *Factory) Blend(mode filter.BlendMode, background, foreground filter.Node, crop *filter.CropRect) (filter.Node, error) {
	refs, err := f.refsOf(background, foreground)
	if err != nil {
		return nil, err
	}
	return f.add(KindBlend, refs, crop, &BlendParams{Mode: mode}), nil
}

// Arithmetic implements filter.Factory.
func (f *Factory) Arithmetic(k1, k2, k3, k4 float32, enforcePM bool, background, foreground filter.Node, crop *filter.CropRect) (filter.Node, error) {
	if !finite(k1, k2, k3, k4) {
		return nil, filter.ErrInvalidParams
	}
	refs, err := f.refsOf(background, foreground)
	if err != nil {
		return nil, err
	}
	return f.add(KindArithmetic, refs, crop, &ArithmeticParams{K1: k1, K2: k2, K3: k3, K4: k4, EnforcePM: enforcePM}), nil
}

// ColorFilter implements filter.Factory.
func (f *Factory) ColorFilter(cf filter.ColorFilter, input filter.Node, crop *filter.CropRect) (filter.Node, error) {
	if cf == nil {
		return nil, filter.ErrInvalidParams
	}
	refs, err := f.refsOf(input)
	if err != nil {
		return nil, err
	}
	return f.add(KindColorFilter, refs, crop, &ColorFilterParams{Filter: cf}), nil
}

// Merge implements filter.Factory.
func (f *Factory) Merge(inputs []filter.Node, crop *filter.CropRect) (filter.Node, error) {
	if len(inputs) == 0 {
		return nil, filter.ErrInvalidParams
	}
	for _, in := range inputs {
		if in == nil {
			return nil, filter.ErrNilInput
		}
	}
	refs, err := f.refsOf(inputs...)
	if err != nil {
		return nil, err
	}
	return f.add(KindMerge, refs, crop, nil), nil
}

// Blur implements filter.Factory.
func (f *Factory) Blur(sigmaX, sigmaY float32, input filter.Node, crop *filter.CropRect) (filter.Node, error) {
	if !finite(sigmaX, sigmaY) || sigmaX < 0 || sigmaY < 0 {
		return nil, filter.ErrInvalidParams
	}
	refs, err := f.refsOf(input)
	if err != nil {
		return nil, err
	}
	return f.add(KindBlur, refs, crop, &BlurParams{SigmaX: sigmaX, SigmaY: sigmaY}), nil
}

// Morphology implements filter.Factory.
func (f *Factory) Morphology(op filter.MorphologyOp, radiusX, radiusY int, input filter.Node, crop *filter.CropRect) (filter.Node, error) {
	if radiusX < 0 || radiusY < 0 {
		return nil, filter.ErrInvalidParams
	}
	refs, err := f.refsOf(input)
	if err != nil {
		return nil, err
	}
	return f.add(KindMorphology, refs, crop, &MorphologyParams{Op: op, RadiusX: radiusX, RadiusY: radiusY}), nil
}

// Offset implements filter.Factory.
func (f *Factory) Offset(dx, dy float32, input filter.Node, crop *filter.CropRect) (filter.Node, error) {
	if !finite(dx, dy) {
		return nil, filter.ErrInvalidParams
	}
	refs, err := f.refsOf(input)
	if err != nil {
		return nil, err
	}
	return f.add(KindOffset, refs, crop, &OffsetParams{DX: dx, DY: dy}), nil
}

// DisplacementMap implements filter.Factory.
func (f *Factory) DisplacementMap(xChannel, yChannel filter.ColorChannel, scale float32, displacement, input filter.Node, crop *filter.CropRect) (filter.Node, error) {
	if !finite(scale) {
		return nil, filter.ErrInvalidParams
	}
	refs, err := f.refsOf(displacement, input)
	if err != nil {
		return nil, err
	}
	return f.add(KindDisplacementMap, refs, crop, &DisplacementParams{XChannel: xChannel, YChannel: yChannel, Scale: scale}), nil
}

func (f *Factory) lighting(kind Kind, p *LightingParams, input filter.Node, crop *filter.CropRect) (filter.Node, error) {
	if !finitePoint(p.Direction) || !finitePoint(p.Location) || !finitePoint(p.Target) ||
		!finite(p.SpecularExponent, p.CutoffAngle, p.SurfaceScale, p.Constant, p.Shininess) {
		return nil, filter.ErrInvalidParams
	}
	refs, err := f.refsOf(input)
	if err != nil {
		return nil, err
	}
	return f.add(kind, refs, crop, p), nil
}

// DistantLitDiffuse implements filter.Factory.
func (f *Factory) DistantLitDiffuse(direction geom.Point3, lightColor filter.Color, surfaceScale, kd float32, input filter.Node, crop *filter.CropRect) (filter.Node, error) {
	return f.lighting(KindDistantLitDiffuse, &LightingParams{
		Direction: direction, Color: lightColor, SurfaceScale: surfaceScale, Constant: kd,
	}, input, crop)
}

// PointLitDiffuse implements filter.Factory.
func (f *Factory) PointLitDiffuse(location geom.Point3, lightColor filter.Color, surfaceScale, kd float32, input filter.Node, crop *filter.CropRect) (filter.Node, error) {
	return f.lighting(KindPointLitDiffuse, &LightingParams{
		Location: location, Color: lightColor, SurfaceScale: surfaceScale, Constant: kd,
	}, input, crop)
}

// SpotLitDiffuse implements filter.Factory.
func (f *Factory) SpotLitDiffuse(location, target geom.Point3, specularExponent, cutoffAngle float32, lightColor filter.Color, surfaceScale, kd float32, input filter.Node, crop *filter.CropRect) (filter.Node, error) {
	return f.lighting(KindSpotLitDiffuse, &LightingParams{
		Location: location, Target: target, SpecularExponent: specularExponent, CutoffAngle: cutoffAngle,
		Color: lightColor, SurfaceScale: surfaceScale, Constant: kd,
	}, input, crop)
}

// DistantLitSpecular implements filter.Factory.
func (f *Factory) DistantLitSpecular(direction geom.Point3, lightColor filter.Color, surfaceScale, ks, shininess float32, input filter.Node, crop *filter.CropRect) (filter.Node, error) {
	return f.lighting(KindDistantLitSpecular, &LightingParams{
		Direction: direction, Color: lightColor, SurfaceScale: surfaceScale, Constant: ks, Shininess: shininess,
	}, input, crop)
}

// PointLitSpecular implements filter.Factory.
func (f *Factory) PointLitSpecular(location geom.Point3, lightColor filter.Color, surfaceScale, ks, shininess float32, input filter.Node, crop *filter.CropRect) (filter.Node, error) {
	return f.lighting(KindPointLitSpecular, &LightingParams{
		Location: location, Color: lightColor, SurfaceScale: surfaceScale, Constant: ks, Shininess: shininess,
	}, input, crop)
}

// SpotLitSpecular implements filter.Factory.
func (f *Factory) SpotLitSpecular(location, target geom.Point3, specularExponent, cutoffAngle float32, lightColor filter.Color, surfaceScale, ks, shininess float32, input filter.Node, crop *filter.CropRect) (filter.Node, error) {
	return f.lighting(KindSpotLitSpecular, &LightingParams{
		Location: location, Target: target, SpecularExponent: specularExponent, CutoffAngle: cutoffAngle,
		Color: lightColor, SurfaceScale: surfaceScale, Constant: ks, Shininess: shininess,
	}, input, crop)
}

// MatrixConvolution implements filter.Factory.
func (f *Factory) MatrixConvolution(kernel filter.Kernel, input filter.Node, crop *filter.CropRect) (filter.Node, error) {
	if kernel.Width <= 0 || kernel.Height <= 0 || len(kernel.Weights) != kernel.Width*kernel.Height {
		return nil, filter.ErrInvalidParams
	}
	if kernel.OffsetX < 0 || kernel.OffsetX >= kernel.Width || kernel.OffsetY < 0 || kernel.OffsetY >= kernel.Height {
		return nil, filter.ErrInvalidParams
	}
	if !finite(kernel.Gain, kernel.Bias) || !finite(kernel.Weights...) {
		return nil, filter.ErrInvalidParams
	}
	refs, err := f.refsOf(input)
	if err != nil {
		return nil, err
	}
	kernel.Weights = append([]float32(nil), kernel.Weights...)
	return f.add(KindMatrixConvolution, refs, crop, &ConvolutionParams{Kernel: kernel}), nil
}

// Tile implements filter.Factory.
func (f *Factory) Tile(src, dst geom.Rect, input filter.Node) (filter.Node, error) {
	if src.IsEmpty() || dst.IsEmpty() {
		return nil, filter.ErrInvalidParams
	}
	refs, err := f.refsOf(input)
	if err != nil {
		return nil, err
	}
	return f.add(KindTile, refs, nil, &TileParams{Src: src, Dst: dst}), nil
}

// Image implements filter.Factory.
func (f *Factory) Image(img *filter.Image, src, dst geom.Rect, quality filter.FilterQuality) (filter.Node, error) {
	if img == nil || img.Source == nil {
		return nil, filter.ErrNilInput
	}
	if src.IsEmpty() || dst.IsEmpty() {
		return nil, filter.ErrInvalidParams
	}
	return f.add(KindImage, nil, nil, &ImageParams{Image: img, Src: src, Dst: dst, Quality: quality}), nil
}

// Picture implements filter.Factory.
func (f *Factory) Picture(pic *filter.Picture, cull geom.Rect) (filter.Node, error) {
	if pic == nil {
		return nil, filter.ErrNilInput
	}
	return f.add(KindPicture, nil, nil, &PictureParams{Picture: pic, Cull: cull}), nil
}

// Paint implements filter.Factory.
func (f *Factory) Paint(p *filter.Paint, crop *filter.CropRect) (filter.Node, error) {
	if p == nil {
		return nil, filter.ErrNilInput
	}
	return f.add(KindPaint, nil, crop, &PaintParams{Paint: p}), nil
}
