package compile

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/filter/record"
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/internal/link"
	"github.com/gogpu/svgfilter/model"
)

var (
	testBBox         = geom.XYWH(0, 0, 100, 100)
	testFilterRegion = geom.XYWH(-10, -10, 120, 120)
	testCurrentColor = filter.Color{R: 10, G: 20, B: 30, A: 255}
)

func testSource() *filter.StaticSource {
	return &filter.StaticSource{
		Graphic: &filter.Picture{Cull: testBBox},
		Fill:    filter.NewColorPaint(filter.Black),
	}
}

func newTestEnv() (*Env, *record.Factory) {
	f := record.NewFactory()
	return &Env{
		Element:  model.Element{Color: testCurrentColor},
		BBox:     testBBox,
		Viewport: geom.XYWH(0, 0, 200, 200),
		Factory:  f,
		Source:   testSource(),
	}, f
}

func chainOf(units model.CoordinateUnits, prims ...model.Primitive) *link.Chain {
	return &link.Chain{
		X:              link.DefaultX,
		Y:              link.DefaultY,
		Width:          link.DefaultWidth,
		Height:         link.DefaultHeight,
		FilterUnits:    link.DefaultFilterUnits,
		PrimitiveUnits: units,
		Primitives:     prims,
	}
}

// assemble compiles prims in user space against the test filter region.
func assemble(t *testing.T, prims ...model.Primitive) (*Result, *record.Factory) {
	t.Helper()
	env, f := newTestEnv()
	return Assemble(chainOf(model.UserSpaceOnUse, prims...), testFilterRegion, env), f
}

func opOf(t *testing.T, f *record.Factory, n filter.Node) record.Op {
	t.Helper()
	if n == nil {
		t.Fatal("nil node")
	}
	op, ok := f.Lookup(n)
	if !ok {
		t.Fatalf("node %v not recorded", n)
	}
	return op
}

func refOf(t *testing.T, n filter.Node) record.Ref {
	t.Helper()
	rn, ok := n.(*record.Node)
	if !ok {
		t.Fatalf("node is %T, want *record.Node", n)
	}
	return rn.Ref()
}

func requireOK(t *testing.T, res *Result, i int) Outcome {
	t.Helper()
	out := res.Outcomes[i]
	if out.Err != nil || out.Node == nil {
		t.Fatalf("primitive %d (%v) failed: %v", i, out.Kind, out.Err)
	}
	return out
}

func requireErr(t *testing.T, res *Result, i int, want error) {
	t.Helper()
	out := res.Outcomes[i]
	if !errors.Is(out.Err, want) {
		t.Fatalf("primitive %d (%v) err = %v, want %v", i, out.Kind, out.Err, want)
	}
	if out.Node != nil {
		t.Fatalf("primitive %d produced a node despite failing", i)
	}
}

func region(x, y, w, h float64) (bx, by, bw, bh *model.Unit) {
	return model.Px(x).Ptr(), model.Px(y).Ptr(), model.Px(w).Ptr(), model.Px(h).Ptr()
}

// floodAt returns a named flood with an explicit user-space region.
func floodAt(result string, x, y, w, h float64) *model.Flood {
	f := model.NewFlood()
	f.Result = result
	f.X, f.Y, f.Width, f.Height = region(x, y, w, h)
	return f
}

type stubLoader map[string]*filter.Asset

func (l stubLoader) Load(href string) (*filter.Asset, error) {
	a, ok := l[href]
	if !ok {
		return nil, errors.New("stub: not found")
	}
	return a, nil
}

type stubFragment struct{ w, h float64 }

func (s stubFragment) Size() (float64, float64) { return s.w, s.h }

func rgbaImage(w, h int) *filter.Image {
	return filter.NewImage(image.NewRGBA(image.Rect(0, 0, w, h)))
}
