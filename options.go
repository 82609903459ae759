package svgfilter

import (
	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
)

// Option configures a compilation.
//
// Example:
//
//	f := record.NewFactory()
//	paint, ok := svgfilter.Compile(el, bounds, src, assets,
//	    svgfilter.WithFactory(f),
//	    svgfilter.WithViewport(geom.XYWH(0, 0, 800, 600)),
//	)
type Option func(*options)

type options struct {
	factory  filter.Factory
	viewport *geom.Rect
	renderer filter.FragmentRenderer
}

// WithFactory sets the backend that builds filter nodes.
// Without it, Compile creates one from the filter registry's default.
func WithFactory(f filter.Factory) Option {
	return func(o *options) {
		o.factory = f
	}
}

// WithViewport sets the rectangle that user-space percentages are
// relative to. It defaults to the element bounds.
func WithViewport(r geom.Rect) Option {
	return func(o *options) {
		o.viewport = &r
	}
}

// WithFragmentRenderer sets how feImage snapshots nested fragments.
// It defaults to filter.DeferredSnapshot.
func WithFragmentRenderer(r filter.FragmentRenderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}
