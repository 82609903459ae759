package svgfilter

import (
	"testing"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/filter/record"
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/model"
)

var testBounds = geom.XYWH(0, 0, 100, 100)

func testSource() *filter.StaticSource {
	return &filter.StaticSource{Graphic: &filter.Picture{Cull: testBounds}}
}

// elementWith returns an element referencing the first of defs.
func elementWith(defs ...*model.FilterDefinition) model.Element {
	d := model.Defs{}
	for _, f := range defs {
		d.Add(f)
	}
	return model.Element{ID: "el", Filter: "url(#" + defs[0].ID + ")", Defs: d}
}

// compileRecorded compiles el against a fresh recording factory.
func compileRecorded(t *testing.T, el model.Element, opts ...Option) (*Result, *record.Factory, error) {
	t.Helper()
	f := record.NewFactory()
	opts = append([]Option{WithFactory(f)}, opts...)
	res, err := CompileGraph(el, testBounds, testSource(), nil, opts...)
	return res, f, err
}

func lookupOp(t *testing.T, f *record.Factory, n filter.Node) record.Op {
	t.Helper()
	op, ok := f.Lookup(n)
	if !ok {
		t.Fatalf("node %v not recorded", n)
	}
	return op
}

func namedFlood(result string, x, y, w, h float64) *model.Flood {
	f := model.NewFlood()
	f.Result = result
	f.X, f.Y = model.Px(x).Ptr(), model.Px(y).Ptr()
	f.Width, f.Height = model.Px(w).Ptr(), model.Px(h).Ptr()
	return f
}
