// Package compile turns a linked filter chain into a graph of backend
// filter nodes.
//
// Primitives are compiled in a single left-to-right pass. Each one
// resolves its inputs through a resolve.Context, computes its region and
// asks the factory for one node. A primitive that cannot be built is
// logged and skipped; later primitives that name its result fail in turn.
package compile

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/internal/link"
	"github.com/gogpu/svgfilter/internal/resolve"
	"github.com/gogpu/svgfilter/internal/units"
	"github.com/gogpu/svgfilter/model"
)

// Env carries everything a compilation reads besides the chain itself.
type Env struct {
	Element model.Element

	// BBox is the element's bounding box in device space.
	BBox geom.Rect

	// Viewport is the reference for user-space percentages.
	Viewport geom.Rect

	Factory  filter.Factory
	Source   filter.ContentSource
	Assets   filter.AssetLoader
	Renderer filter.FragmentRenderer

	Logger *slog.Logger
}

// Outcome reports what happened to one primitive.
type Outcome struct {
	Index  int
	Kind   model.Kind
	Result string

	// Region is the effective region, after the input override.
	Region geom.Rect

	// Node is nil when the primitive failed or was skipped.
	Node filter.Node
	Err  error
}

// Result is the output of Assemble.
type Result struct {
	// Node is the filter for the element, nil when the compilation is
	// invalid.
	Node filter.Node

	// Region is the region of Node.
	Region geom.Rect

	Outcomes []Outcome
}

// FilterRegion resolves the chain's filter region against the element.
func FilterRegion(c *link.Chain, bbox, viewport geom.Rect) (geom.Rect, bool) {
	r := units.Resolver{BBox: bbox, Viewport: viewport, Mode: c.FilterUnits}
	return r.Rect(&c.X, &c.Y, &c.Width, &c.Height, geom.Rect{})
}

type item struct {
	index  int
	prim   model.Primitive
	region geom.Rect
}

// assembler holds the state of one pass.
type assembler struct {
	env   *Env
	ctx   *resolve.Context
	units *units.Resolver
	log   *slog.Logger
}

// Assemble compiles the chain's primitives within filterRegion.
//
// Primitives without a valid region are dropped before the pass and do
// not count as the first primitive. The result carries a node only if the
// final primitive of the pass produced one.
func Assemble(c *link.Chain, filterRegion geom.Rect, env *Env) *Result {
	log := env.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	a := &assembler{
		env:   env,
		ctx:   resolve.NewContext(env.Factory, env.Source, filterRegion),
		units: &units.Resolver{BBox: env.BBox, Viewport: env.Viewport, Mode: c.PrimitiveUnits},
		log:   log,
	}

	res := &Result{Outcomes: make([]Outcome, len(c.Primitives))}
	items := make([]item, 0, len(c.Primitives))
	for i, p := range c.Primitives {
		res.Outcomes[i] = Outcome{Index: i, Kind: p.Kind(), Result: p.Common().Result}

		b := p.Common()
		region, ok := a.units.Rect(b.X, b.Y, b.Width, b.Height, filterRegion)
		if !ok {
			res.Outcomes[i].Err = fmt.Errorf("%s: %w", p.Kind(), ErrNoRegion)
			a.log.Debug("svgfilter: primitive skipped", "index", i, "kind", p.Kind(), "err", ErrNoRegion)
			continue
		}
		items = append(items, item{index: i, prim: p, region: region})
	}

	lastOK := false
	for n, it := range items {
		out := &res.Outcomes[it.index]
		node, region, err := a.build(it.prim, it.region, n == 0)
		out.Region = region
		if err != nil {
			out.Err = fmt.Errorf("%s: %w", it.prim.Kind(), err)
			a.log.Debug("svgfilter: primitive failed",
				"index", it.index, "kind", it.prim.Kind(), "err", err)
			lastOK = false
			continue
		}

		a.ctx.Produce(out.Result, node, region)
		out.Node = node
		lastOK = true
		a.log.Debug("svgfilter: primitive compiled",
			"index", it.index, "kind", it.prim.Kind(), "op", node.Op(), "result", out.Result)
	}

	if lastOK {
		last := a.ctx.Last()
		res.Node = a.ctx.Node(last)
		res.Region, _ = a.ctx.Region(last)
	}
	return res
}

// build dispatches one primitive to its builder.
func (a *assembler) build(p model.Primitive, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	switch p := p.(type) {
	case *model.Blend:
		return a.blend(p, region, first)
	case *model.ColorMatrix:
		return a.colorMatrix(p, region, first)
	case *model.ComponentTransfer:
		return a.componentTransfer(p, region, first)
	case *model.Composite:
		return a.composite(p, region, first)
	case *model.ConvolveMatrix:
		return a.convolveMatrix(p, region, first)
	case *model.DiffuseLighting:
		return a.diffuseLighting(p, region, first)
	case *model.DisplacementMap:
		return a.displacementMap(p, region, first)
	case *model.Flood:
		return a.flood(p, region)
	case *model.GaussianBlur:
		return a.gaussianBlur(p, region, first)
	case *model.Image:
		return a.image(p, region)
	case *model.Merge:
		return a.merge(p, region)
	case *model.Morphology:
		return a.morphology(p, region, first)
	case *model.Offset:
		return a.offset(p, region, first)
	case *model.SpecularLighting:
		return a.specularLighting(p, region, first)
	case *model.Tile:
		return a.tile(p, region, first)
	case *model.Turbulence:
		return a.turbulence(p, region)
	default:
		return nil, region, ErrUnknownPrimitive
	}
}

// qualifies reports whether an input overrides the primitive region. An
// empty name chains to the previous result and qualifies, except on the
// first primitive where it reads SourceGraphic.
func qualifies(name string, first bool) bool {
	return !(name == "" && first) && !resolve.IsStandardInput(name)
}

// input resolves one input and returns its node with its stored region.
func (a *assembler) input(name string, first bool) (filter.Node, geom.Rect, error) {
	ref, err := a.ctx.Input(name, first)
	if err != nil {
		return nil, geom.Rect{}, fmt.Errorf("%w: %q: %w", ErrMissingInput, name, err)
	}
	region, _ := a.ctx.Region(ref)
	return a.ctx.Node(ref), region, nil
}

// unary resolves the single input of b and applies the region override.
func (a *assembler) unary(b *model.Base, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	name := strings.TrimSpace(b.In)
	node, r, err := a.input(name, first)
	if err != nil {
		return nil, region, err
	}
	if qualifies(name, first) {
		region = r
	}
	return node, region, nil
}

// binary resolves both inputs of p. The region becomes the union of both
// stored regions when in qualifies and in2 is not a standard input.
func (a *assembler) binary(p model.Binary, region geom.Rect, first bool) (in, in2 filter.Node, _ geom.Rect, _ error) {
	name, name2 := strings.TrimSpace(p.Common().In), strings.TrimSpace(p.Input2())
	in2, r2, err := a.input(name2, false)
	if err != nil {
		return nil, nil, region, err
	}
	in, r1, err := a.input(name, first)
	if err != nil {
		return nil, nil, region, err
	}
	if qualifies(name, first) && !resolve.IsStandardInput(name2) {
		region = r1.Union(r2)
	}
	return in, in2, region, nil
}

func crop(region geom.Rect) *filter.CropRect {
	return filter.NewCropRect(region)
}
