package compile

import (
	"math"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/model"
)

// maxConeAngle replaces an absent or out-of-range spot cone angle.
const maxConeAngle = 90

// Direction returns the unit vector pointing at a distant light.
func Direction(l *model.DistantLight) geom.Point3 {
	az := l.Azimuth * math.Pi / 180
	el := l.Elevation * math.Pi / 180
	return geom.Point3{
		X: math.Cos(az) * math.Cos(el),
		Y: math.Sin(az) * math.Cos(el),
		Z: math.Sin(el),
	}
}

// ConeAngle returns the spot light cutoff angle in degrees.
func ConeAngle(l *model.SpotLight) float32 {
	if l.LimitingConeAngle == nil {
		return maxConeAngle
	}
	v := *l.LimitingConeAngle
	if math.IsNaN(v) || v > maxConeAngle || v < -maxConeAngle {
		return maxConeAngle
	}
	return float32(v)
}

// spot scales the position and target of a spot light.
func (a *assembler) spot(l *model.SpotLight) (loc, target geom.Point3) {
	return a.units.Point(l.X, l.Y, l.Z), a.units.Point(l.PointsAtX, l.PointsAtY, l.PointsAtZ)
}

// hasLight reports whether l is a non-nil light source.
func hasLight(l model.LightSource) bool {
	switch l := l.(type) {
	case *model.DistantLight:
		return l != nil
	case *model.PointLight:
		return l != nil
	case *model.SpotLight:
		return l != nil
	default:
		return false
	}
}

func (a *assembler) lightingColor(v model.ColorValue) (filter.Color, error) {
	c, ok := v.Resolve(a.env.Element.Color, filter.White)
	if !ok {
		return filter.Color{}, ErrUnsupportedColor
	}
	return c, nil
}

func (a *assembler) diffuseLighting(p *model.DiffuseLighting, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	in, region, err := a.unary(&p.Base, region, first)
	if err != nil {
		return nil, region, err
	}
	color, err := a.lightingColor(p.LightingColor)
	if err != nil {
		return nil, region, err
	}
	if !hasLight(p.Light) {
		return nil, region, ErrNoLight
	}

	f := a.env.Factory
	surface := float32(p.SurfaceScale)
	kd := float32(max(p.DiffuseConstant, 0))

	var n filter.Node
	switch l := p.Light.(type) {
	case *model.DistantLight:
		n, err = f.DistantLitDiffuse(Direction(l), color, surface, kd, in, crop(region))
	case *model.PointLight:
		n, err = f.PointLitDiffuse(a.units.Point(l.X, l.Y, l.Z), color, surface, kd, in, crop(region))
	case *model.SpotLight:
		loc, target := a.spot(l)
		n, err = f.SpotLitDiffuse(loc, target, float32(l.SpecularExponent), ConeAngle(l), color, surface, kd, in, crop(region))
	default:
		return nil, region, ErrNoLight
	}
	return n, region, err
}

func (a *assembler) specularLighting(p *model.SpecularLighting, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	in, region, err := a.unary(&p.Base, region, first)
	if err != nil {
		return nil, region, err
	}
	color, err := a.lightingColor(p.LightingColor)
	if err != nil {
		return nil, region, err
	}
	if !hasLight(p.Light) {
		return nil, region, ErrNoLight
	}

	f := a.env.Factory
	surface := float32(p.SurfaceScale)
	ks := float32(p.SpecularConstant)
	shininess := float32(p.SpecularExponent)

	var n filter.Node
	switch l := p.Light.(type) {
	case *model.DistantLight:
		n, err = f.DistantLitSpecular(Direction(l), color, surface, ks, shininess, in, crop(region))
	case *model.PointLight:
		n, err = f.PointLitSpecular(a.units.Point(l.X, l.Y, l.Z), color, surface, ks, shininess, in, crop(region))
	case *model.SpotLight:
		loc, target := a.spot(l)
		n, err = f.SpotLitSpecular(loc, target, float32(l.SpecularExponent), ConeAngle(l), color, surface, ks, shininess, in, crop(region))
	default:
		return nil, region, ErrNoLight
	}
	return n, region, err
}
