package svgdoc

import (
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/model"
)

// newPrimitive builds a primitive of kind from its element attributes.
// Child elements are attached later by addChild.
func newPrimitive(kind model.Kind, a attrs) model.Primitive {
	var p model.Primitive
	switch kind {
	case model.KindBlend:
		mode, _ := model.ParseBlendMode(a.str("mode"))
		p = &model.Blend{In2: a.str("in2"), Mode: mode}

	case model.KindColorMatrix:
		typ, _ := model.ParseColorMatrixType(a.str("type"))
		p = &model.ColorMatrix{Type: typ, Values: a.numbers("values")}

	case model.KindComponentTransfer:
		p = &model.ComponentTransfer{}

	case model.KindComposite:
		op, _ := model.ParseCompositeOperator(a.str("operator"))
		p = &model.Composite{
			In2:      a.str("in2"),
			Operator: op,
			K1:       a.number("k1", 0),
			K2:       a.number("k2", 0),
			K3:       a.number("k3", 0),
			K4:       a.number("k4", 0),
		}

	case model.KindConvolveMatrix:
		edge, _ := model.ParseEdgeMode(a.str("edgeMode"))
		p = &model.ConvolveMatrix{
			Order:         a.numbers("order"),
			KernelMatrix:  a.numbers("kernelMatrix"),
			Divisor:       a.number("divisor", 0),
			Bias:          a.number("bias", 0),
			TargetX:       a.optInt("targetX"),
			TargetY:       a.optInt("targetY"),
			EdgeMode:      edge,
			PreserveAlpha: a.str("preserveAlpha") == "true",
		}

	case model.KindDiffuseLighting:
		d := model.NewDiffuseLighting(nil)
		d.LightingColor = a.color("lighting-color")
		d.SurfaceScale = a.number("surfaceScale", 1)
		d.DiffuseConstant = a.number("diffuseConstant", 1)
		p = d

	case model.KindDisplacementMap:
		x, _ := model.ParseChannelSelector(a.str("xChannelSelector"))
		y, _ := model.ParseChannelSelector(a.str("yChannelSelector"))
		p = &model.DisplacementMap{
			In2:      a.str("in2"),
			Scale:    a.number("scale", 0),
			XChannel: x,
			YChannel: y,
		}

	case model.KindFlood:
		f := model.NewFlood()
		f.FloodColor = a.color("flood-color")
		f.FloodOpacity = a.number("flood-opacity", 1)
		p = f

	case model.KindGaussianBlur:
		p = &model.GaussianBlur{StdDeviation: a.numbers("stdDeviation")}

	case model.KindImage:
		p = &model.Image{
			Href:        a.str("href"),
			AspectRatio: geom.ParseAspectRatio(a.str("preserveAspectRatio")),
		}

	case model.KindMerge:
		p = &model.Merge{}

	case model.KindMorphology:
		op, _ := model.ParseMorphologyOperator(a.str("operator"))
		p = &model.Morphology{Operator: op, Radius: a.numbers("radius")}

	case model.KindOffset:
		o := &model.Offset{}
		if u := a.unit("dx"); u != nil {
			o.Dx = *u
		}
		if u := a.unit("dy"); u != nil {
			o.Dy = *u
		}
		p = o

	case model.KindSpecularLighting:
		s := model.NewSpecularLighting(nil)
		s.LightingColor = a.color("lighting-color")
		s.SurfaceScale = a.number("surfaceScale", 1)
		s.SpecularConstant = a.number("specularConstant", 1)
		s.SpecularExponent = a.number("specularExponent", 1)
		p = s

	case model.KindTile:
		p = &model.Tile{}

	case model.KindTurbulence:
		t := model.NewTurbulence()
		t.Type, _ = model.ParseTurbulenceType(a.str("type"))
		t.BaseFrequency = a.numbers("baseFrequency")
		if n := a.optInt("numOctaves"); n != nil {
			t.NumOctaves = *n
		}
		t.Seed = a.number("seed", 0)
		t.StitchTiles = a.str("stitchTiles") == "stitch"
		p = t

	default:
		return nil
	}

	b := p.Common()
	b.In = a.str("in")
	b.Result = a.str("result")
	b.X, b.Y = a.unit("x"), a.unit("y")
	b.Width, b.Height = a.unit("width"), a.unit("height")
	return p
}

// addChild attaches a child element of a primitive: transfer functions,
// merge nodes and light sources. Unknown children are ignored, as is any
// light after the first.
func addChild(p model.Primitive, name string, a attrs) {
	switch p := p.(type) {
	case *model.ComponentTransfer:
		fn := transferFunc(a)
		switch name {
		case "feFuncR":
			p.FuncR = fn
		case "feFuncG":
			p.FuncG = fn
		case "feFuncB":
			p.FuncB = fn
		case "feFuncA":
			p.FuncA = fn
		}
	case *model.Merge:
		if name == "feMergeNode" {
			p.Nodes = append(p.Nodes, model.MergeNode{In: a.str("in")})
		}
	case *model.DiffuseLighting:
		if p.Light == nil {
			p.Light = lightSource(name, a)
		}
	case *model.SpecularLighting:
		if p.Light == nil {
			p.Light = lightSource(name, a)
		}
	}
}

func transferFunc(a attrs) *model.TransferFunc {
	typ, _ := model.ParseTransferType(a.str("type"))
	fn := model.NewTransferFunc(typ)
	fn.TableValues = a.numbers("tableValues")
	fn.Slope = a.number("slope", 1)
	fn.Intercept = a.number("intercept", 0)
	fn.Amplitude = a.number("amplitude", 1)
	fn.Exponent = a.number("exponent", 1)
	fn.Offset = a.number("offset", 0)
	return fn
}

// lightSource returns nil for anything but the three light elements, so
// that a stray child leaves the primitive without a light.
func lightSource(name string, a attrs) model.LightSource {
	switch name {
	case "feDistantLight":
		return &model.DistantLight{
			Azimuth:   a.number("azimuth", 0),
			Elevation: a.number("elevation", 0),
		}
	case "fePointLight":
		return &model.PointLight{X: a.number("x", 0), Y: a.number("y", 0), Z: a.number("z", 0)}
	case "feSpotLight":
		s := model.NewSpotLight()
		s.X, s.Y, s.Z = a.number("x", 0), a.number("y", 0), a.number("z", 0)
		s.PointsAtX = a.number("pointsAtX", 0)
		s.PointsAtY = a.number("pointsAtY", 0)
		s.PointsAtZ = a.number("pointsAtZ", 0)
		s.SpecularExponent = a.number("specularExponent", 1)
		s.LimitingConeAngle = a.optNumber("limitingConeAngle")
		return s
	default:
		return nil
	}
}
