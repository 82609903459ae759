package svgdoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/model"
)

const shadowDoc = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"
     width="200" height="100" viewBox="0 0 400 200" color="red">
  <defs>
    <filter id="base" x="0" y="0" width="1" height="1" primitiveUnits="objectBoundingBox">
      <feGaussianBlur in="SourceAlpha" stdDeviation="3 1" result="blur"/>
      <feOffset dx="2" dy="0.5em" result="off"/>
      <feFlood style="flood-color: currentColor; flood-opacity: .5"/>
      <feComposite in2="off" operator="in"/>
      <feMerge>
        <feMergeNode/>
        <feMergeNode in="SourceGraphic"/>
      </feMerge>
    </filter>
    <filter id="derived" xlink:href="#base" filterUnits="userSpaceOnUse"/>
  </defs>
  <g color="#00ff00">
    <rect id="box" filter="url(#derived)" width="10" height="10"/>
  </g>
  <circle id="dot" style="filter: url(#base)"/>
  <rect id="plain"/>
</svg>`

func TestParseFilters(t *testing.T) {
	doc, err := Parse(strings.NewReader(shadowDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := len(doc.Filters()); got != 2 {
		t.Fatalf("filters = %d, want 2", got)
	}
	base, ok := doc.Filter("base")
	if !ok {
		t.Fatal("filter base not found")
	}
	if base.X == nil || base.X.Value != 0 || base.Width == nil || base.Width.Value != 1 {
		t.Errorf("region = %v %v", base.X, base.Width)
	}
	if base.FilterUnits != nil {
		t.Error("filterUnits set although absent")
	}
	if base.PrimitiveUnits == nil || *base.PrimitiveUnits != model.ObjectBoundingBox {
		t.Errorf("primitiveUnits = %v", base.PrimitiveUnits)
	}

	kinds := make([]model.Kind, len(base.Primitives))
	for i, p := range base.Primitives {
		kinds[i] = p.Kind()
	}
	want := []model.Kind{model.KindGaussianBlur, model.KindOffset, model.KindFlood, model.KindComposite, model.KindMerge}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kind[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}

	blur := base.Primitives[0].(*model.GaussianBlur)
	if blur.In != "SourceAlpha" || blur.Result != "blur" || len(blur.StdDeviation) != 2 || blur.StdDeviation[1] != 1 {
		t.Errorf("blur = %+v", blur)
	}
	off := base.Primitives[1].(*model.Offset)
	if off.Dx != model.Number(2) || off.Dy != (model.Unit{Value: 0.5, Type: model.UnitEm}) {
		t.Errorf("offset = %+v", off)
	}
	flood := base.Primitives[2].(*model.Flood)
	if flood.FloodColor != model.CurrentColor || flood.FloodOpacity != 0.5 {
		t.Errorf("flood = %+v", flood)
	}
	comp := base.Primitives[3].(*model.Composite)
	if comp.In2 != "off" || comp.Operator != model.CompositeIn {
		t.Errorf("composite = %+v", comp)
	}
	merge := base.Primitives[4].(*model.Merge)
	if len(merge.Nodes) != 2 || merge.Nodes[0].In != "" || merge.Nodes[1].In != "SourceGraphic" {
		t.Errorf("merge = %+v", merge.Nodes)
	}

	derived, _ := doc.Filter("derived")
	if derived.Href != "#base" || len(derived.Primitives) != 0 {
		t.Errorf("derived = %+v", derived)
	}
	if derived.FilterUnits == nil || *derived.FilterUnits != model.UserSpaceOnUse {
		t.Errorf("derived filterUnits = %v", derived.FilterUnits)
	}
}

func TestParseElements(t *testing.T) {
	doc, err := Parse(strings.NewReader(shadowDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := len(doc.Elements()); got != 2 {
		t.Fatalf("elements = %d, want 2", got)
	}
	box, ok := doc.Element("box")
	if !ok {
		t.Fatal("element box not found")
	}
	if box.Filter != "url(#derived)" || box.Color != (filter.Color{G: 255, A: 255}) {
		t.Errorf("box = %+v", box)
	}
	if box.Defs != model.Resolver(doc) {
		t.Error("element does not resolve through the document")
	}
	dot, ok := doc.Element("dot")
	if !ok || dot.Filter != "url(#base)" || dot.Color != (filter.Color{R: 255, A: 255}) {
		t.Errorf("dot = %+v, %v", dot, ok)
	}
	if _, ok := doc.Element("plain"); ok {
		t.Error("unfiltered element listed")
	}
}

func TestDocumentSize(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		w, h float64
	}{
		{"attributes", `<svg width="200" height="1in"/>`, 200, 96},
		{"viewBox", `<svg viewBox="0 0 40 30"/>`, 40, 30},
		{"percent falls back to viewBox", `<svg width="100%" viewBox="0,0,40,30"/>`, 40, 30},
		{"none", `<svg/>`, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tt.svg))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if w, h := doc.Size(); w != tt.w || h != tt.h {
				t.Errorf("Size() = %v, %v, want %v, %v", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(strings.NewReader(`<html/>`)); !errors.Is(err, ErrNotSVG) {
		t.Errorf("html root err = %v, want ErrNotSVG", err)
	}
	if _, err := Parse(strings.NewReader(`<svg><filter>`)); err == nil {
		t.Error("truncated document parsed")
	}
	if _, err := Parse(strings.NewReader(`<?xml version="1.0" encoding="no-such-charset"?><svg/>`)); err == nil {
		t.Error("unknown charset accepted")
	}
}

func TestParseLegacyCharset(t *testing.T) {
	src := `<?xml version="1.0" encoding="ISO-8859-1"?>` +
		`<svg><filter id="caf` + "\xe9" + `"><feFlood/></filter></svg>`
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := doc.Filter("café"); !ok {
		t.Errorf("filter café not found in %d filters", len(doc.Filters()))
	}
}

func TestParsePrimitives(t *testing.T) {
	const src = `<svg><filter id="f">
	<feBlend in="a" in2="b" mode="multiply"/>
	<feColorMatrix type="hueRotate" values="90"/>
	<feComponentTransfer>
		<feFuncR type="table" tableValues="0 0.5 1"/>
		<feFuncA type="gamma" amplitude="2" exponent="3" offset="0.1"/>
	</feComponentTransfer>
	<feConvolveMatrix order="3" kernelMatrix="1 0 0 0 1 0 0 0 1" targetX="0" edgeMode="wrap" preserveAlpha="true"/>
	<feDiffuseLighting lighting-color="blue" diffuseConstant="2">
		<feSpotLight x="1" y="2" z="3" pointsAtZ="-1" limitingConeAngle="30"/>
		<fePointLight x="9"/>
	</feDiffuseLighting>
	<feDisplacementMap in2="map" scale="10" xChannelSelector="R" yChannelSelector="G"/>
	<feImage xlink:href="img.png" preserveAspectRatio="xMinYMin slice" xmlns:xlink="http://www.w3.org/1999/xlink"/>
	<feMorphology operator="dilate" radius="2"/>
	<feSpecularLighting specularExponent="20"><feDistantLight azimuth="45" elevation="30"/></feSpecularLighting>
	<feTile in="t" x="10%"/>
	<feTurbulence type="fractalNoise" baseFrequency="0.01 0.02" numOctaves="3" seed="7" stitchTiles="stitch"/>
	<feUnknown/>
</filter></svg>`

	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f, _ := doc.Filter("f")
	if len(f.Primitives) != 11 {
		t.Fatalf("primitives = %d, want 11", len(f.Primitives))
	}

	if p := f.Primitives[0].(*model.Blend); p.In != "a" || p.In2 != "b" || p.Mode != model.BlendMultiply {
		t.Errorf("blend = %+v", p)
	}
	if p := f.Primitives[1].(*model.ColorMatrix); p.Type != model.ColorMatrixHueRotate || len(p.Values) != 1 {
		t.Errorf("color matrix = %+v", p)
	}
	ct := f.Primitives[2].(*model.ComponentTransfer)
	if ct.FuncR == nil || ct.FuncR.Type != model.TransferTable || len(ct.FuncR.TableValues) != 3 {
		t.Errorf("funcR = %+v", ct.FuncR)
	}
	if ct.FuncA == nil || ct.FuncA.Amplitude != 2 || ct.FuncA.Exponent != 3 || ct.FuncA.Offset != 0.1 {
		t.Errorf("funcA = %+v", ct.FuncA)
	}
	if ct.FuncG != nil {
		t.Error("funcG set although absent")
	}
	cm := f.Primitives[3].(*model.ConvolveMatrix)
	if len(cm.KernelMatrix) != 9 || cm.TargetX == nil || *cm.TargetX != 0 || cm.TargetY != nil ||
		cm.EdgeMode != model.EdgeWrap || !cm.PreserveAlpha {
		t.Errorf("convolve = %+v", cm)
	}
	dl := f.Primitives[4].(*model.DiffuseLighting)
	spot, ok := dl.Light.(*model.SpotLight)
	if !ok || spot.Z != 3 || spot.PointsAtZ != -1 || spot.LimitingConeAngle == nil || *spot.LimitingConeAngle != 30 {
		t.Errorf("light = %+v", dl.Light)
	}
	if dl.LightingColor != model.RGB(filter.Color{B: 255, A: 255}) || dl.DiffuseConstant != 2 || dl.SurfaceScale != 1 {
		t.Errorf("diffuse = %+v", dl)
	}
	dm := f.Primitives[5].(*model.DisplacementMap)
	if dm.XChannel != model.ChannelR || dm.YChannel != model.ChannelG || dm.Scale != 10 {
		t.Errorf("displacement = %+v", dm)
	}
	img := f.Primitives[6].(*model.Image)
	if img.Href != "img.png" || img.AspectRatio.Align != geom.AlignXMinYMin || !img.AspectRatio.Slice {
		t.Errorf("image = %+v", img)
	}
	if p := f.Primitives[7].(*model.Morphology); p.Operator != model.MorphologyDilate {
		t.Errorf("morphology = %+v", p)
	}
	sl := f.Primitives[8].(*model.SpecularLighting)
	if d, ok := sl.Light.(*model.DistantLight); !ok || d.Azimuth != 45 || sl.SpecularExponent != 20 {
		t.Errorf("specular = %+v", sl)
	}
	if p := f.Primitives[9].(*model.Tile); p.In != "t" || p.X == nil || *p.X != model.Percent(10) {
		t.Errorf("tile = %+v", p)
	}
	tb := f.Primitives[10].(*model.Turbulence)
	if tb.Type != model.TurbulenceFractalNoise || tb.NumOctaves != 3 || tb.Seed != 7 || !tb.StitchTiles || tb.BaseFrequency[1] != 0.02 {
		t.Errorf("turbulence = %+v", tb)
	}
}
