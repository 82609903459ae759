package svgfilter

import (
	"errors"
	"fmt"

	"github.com/gogpu/svgfilter/filter"
	_ "github.com/gogpu/svgfilter/filter/record" // default backend
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/internal/compile"
	"github.com/gogpu/svgfilter/internal/link"
	"github.com/gogpu/svgfilter/model"
)

var (
	// ErrDegenerateRegion is returned when the filter region has no area.
	ErrDegenerateRegion = errors.New("svgfilter: degenerate filter region")

	// ErrNoOutput is returned when the final primitive produced no node.
	ErrNoOutput = errors.New("svgfilter: filter produced no output")
)

// Outcome reports what happened to one primitive of the chain.
type Outcome struct {
	// Index is the position of the primitive in the chain.
	Index int
	Kind  model.Kind

	// Result is the primitive's result name, possibly empty.
	Result string

	// Region is the primitive's effective region. It is zero when the
	// primitive was skipped for lack of a region.
	Region geom.Rect

	// Node is nil when the primitive failed.
	Node filter.Node
	Err  error
}

// Result is the full output of CompileGraph.
type Result struct {
	// Paint is nil when the element has no filter.
	Paint *filter.Paint

	// FilterRegion is the resolved filter region in device space.
	FilterRegion geom.Rect

	// Definitions holds the IDs of the linked filters in href order.
	Definitions []string

	// Cyclic is set when the href chain was cut at a cycle.
	Cyclic bool

	Outcomes []Outcome
}

// Compile builds the filter paint of an element.
//
// bounds is the element's bounding box in device space. src supplies the
// standard inputs; assets resolves feImage references and may be nil.
//
// It returns (nil, true) when the element has no filter or its filter is
// "none", and (nil, false) when the filter cannot be applied, in which
// case the element should be rendered without it.
func Compile(el model.Element, bounds geom.Rect, src filter.ContentSource, assets filter.AssetLoader, opts ...Option) (*filter.Paint, bool) {
	res, err := CompileGraph(el, bounds, src, assets, opts...)
	if err != nil {
		Logger().Debug("svgfilter: filter invalid", "filter", el.Filter, "err", err)
		return nil, false
	}
	return res.Paint, true
}

// CompileGraph is Compile with diagnostics. On failure the returned
// Result may still carry the outcomes gathered so far.
func CompileGraph(el model.Element, bounds geom.Rect, src filter.ContentSource, assets filter.AssetLoader, opts ...Option) (*Result, error) {
	if model.IsNone(el.Filter) {
		return &Result{}, nil
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	viewport := bounds
	if o.viewport != nil {
		viewport = *o.viewport
	}
	factory := o.factory
	if factory == nil {
		f, err := filter.Default()
		if err != nil {
			return nil, err
		}
		factory = f
	}

	chain, err := link.Resolve(el)
	if err != nil {
		return nil, err
	}
	res := &Result{Cyclic: chain.Cyclic}
	for _, d := range chain.Definitions {
		res.Definitions = append(res.Definitions, d.ID)
	}

	region, ok := compile.FilterRegion(chain, bounds, viewport)
	if !ok {
		return res, ErrDegenerateRegion
	}
	res.FilterRegion = region

	out := compile.Assemble(chain, region, &compile.Env{
		Element:  el,
		BBox:     bounds,
		Viewport: viewport,
		Factory:  factory,
		Source:   src,
		Assets:   assets,
		Renderer: o.renderer,
		Logger:   Logger(),
	})
	res.Outcomes = make([]Outcome, len(out.Outcomes))
	for i, oc := range out.Outcomes {
		res.Outcomes[i] = Outcome(oc)
	}
	if out.Node == nil {
		return res, fmt.Errorf("%w (%d primitives)", ErrNoOutput, len(out.Outcomes))
	}

	res.Paint = filter.NewFilterPaint(out.Node)
	return res, nil
}
