package compile

import (
	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/internal/mathx"
	"github.com/gogpu/svgfilter/internal/units"
	"github.com/gogpu/svgfilter/model"
)

func (a *assembler) gaussianBlur(p *model.GaussianBlur, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	in, region, err := a.unary(&p.Base, region, first)
	if err != nil {
		return nil, region, err
	}
	sx, sy := p.StdDeviation.Pair(0, 0)
	sx = a.units.Scale(sx, units.Other)
	sy = a.units.Scale(sy, units.Other)
	if sx < 0 && sy < 0 {
		return nil, region, ErrInvalidParams
	}
	// A single negative deviation blurs along the other axis only.
	sigmaX, sigmaY := float32(max(sx, 0)), float32(max(sy, 0))
	if !mathx.Finite(sigmaX, sigmaY) {
		return nil, region, ErrInvalidParams
	}
	n, err := a.env.Factory.Blur(sigmaX, sigmaY, in, crop(region))
	return n, region, err
}

func (a *assembler) morphology(p *model.Morphology, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	in, region, err := a.unary(&p.Base, region, first)
	if err != nil {
		return nil, region, err
	}
	rx, ry := p.Radius.Pair(0, 0)
	rx = a.units.Scale(rx, units.Other)
	ry = a.units.Scale(ry, units.Other)
	if !(rx > 0) && !(ry > 0) {
		return nil, region, ErrInvalidParams
	}
	if !mathx.Finite(rx, ry) {
		return nil, region, ErrInvalidParams
	}

	op := filter.Erode
	if p.Operator == model.MorphologyDilate {
		op = filter.Dilate
	}
	n, err := a.env.Factory.Morphology(op, int(max(rx, 0)), int(max(ry, 0)), in, crop(region))
	return n, region, err
}

func (a *assembler) offset(p *model.Offset, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	in, region, err := a.unary(&p.Base, region, first)
	if err != nil {
		return nil, region, err
	}
	dx := float32(a.units.Value(p.Dx, units.Horizontal))
	dy := float32(a.units.Value(p.Dy, units.Vertical))
	if !mathx.Finite(dx, dy) {
		return nil, region, ErrInvalidParams
	}
	n, err := a.env.Factory.Offset(dx, dy, in, crop(region))
	return n, region, err
}

// tile repeats the input's own region across the declared region.
func (a *assembler) tile(p *model.Tile, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	in, src, err := a.unary(&p.Base, region, first)
	if err != nil {
		return nil, region, err
	}
	n, err := a.env.Factory.Tile(src, region, in)
	return n, region, err
}

func (a *assembler) merge(p *model.Merge, region geom.Rect) (filter.Node, geom.Rect, error) {
	if len(p.Nodes) == 0 {
		return nil, region, ErrInvalidParams
	}
	inputs := make([]filter.Node, len(p.Nodes))
	for i, mn := range p.Nodes {
		n, _, err := a.input(mn.In, false)
		if err != nil {
			return nil, region, err
		}
		inputs[i] = n
	}
	n, err := a.env.Factory.Merge(inputs, crop(region))
	return n, region, err
}
