package compile

import (
	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/internal/mathx"
	"github.com/gogpu/svgfilter/internal/units"
	"github.com/gogpu/svgfilter/model"
)

// blendModes maps feBlend modes to backend blend modes.
var blendModes = [...]filter.BlendMode{
	model.BlendNormal:     filter.BlendSourceOver,
	model.BlendMultiply:   filter.BlendMultiply,
	model.BlendScreen:     filter.BlendScreen,
	model.BlendOverlay:    filter.BlendOverlay,
	model.BlendDarken:     filter.BlendDarken,
	model.BlendLighten:    filter.BlendLighten,
	model.BlendColorDodge: filter.BlendColorDodge,
	model.BlendColorBurn:  filter.BlendColorBurn,
	model.BlendHardLight:  filter.BlendHardLight,
	model.BlendSoftLight:  filter.BlendSoftLight,
	model.BlendDifference: filter.BlendDifference,
	model.BlendExclusion:  filter.BlendExclusion,
	model.BlendHue:        filter.BlendHue,
	model.BlendSaturation: filter.BlendSaturation,
	model.BlendColor:      filter.BlendColor,
	model.BlendLuminosity: filter.BlendLuminosity,
}

// BlendMode maps an feBlend mode. Unknown modes are source-over.
func BlendMode(m model.BlendMode) filter.BlendMode {
	if int(m) < len(blendModes) {
		return blendModes[m]
	}
	return filter.BlendSourceOver
}

// CompositeMode maps a Porter-Duff feComposite operator.
func CompositeMode(op model.CompositeOperator) filter.BlendMode {
	switch op {
	case model.CompositeIn:
		return filter.BlendSourceIn
	case model.CompositeOut:
		return filter.BlendSourceOut
	case model.CompositeAtop:
		return filter.BlendSourceAtop
	case model.CompositeXor:
		return filter.BlendXor
	default:
		return filter.BlendSourceOver
	}
}

func (a *assembler) blend(p *model.Blend, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	fg, bg, region, err := a.binary(p, region, first)
	if err != nil {
		return nil, region, err
	}
	n, err := a.env.Factory.Blend(BlendMode(p.Mode), bg, fg, crop(region))
	return n, region, err
}

func (a *assembler) composite(p *model.Composite, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	fg, bg, region, err := a.binary(p, region, first)
	if err != nil {
		return nil, region, err
	}

	var n filter.Node
	if p.Operator == model.CompositeArithmetic {
		k1, k2, k3, k4 := float32(p.K1), float32(p.K2), float32(p.K3), float32(p.K4)
		if !mathx.Finite(k1, k2, k3, k4) {
			return nil, region, ErrInvalidParams
		}
		n, err = a.env.Factory.Arithmetic(k1, k2, k3, k4, false, bg, fg, crop(region))
	} else {
		n, err = a.env.Factory.Blend(CompositeMode(p.Operator), bg, fg, crop(region))
	}
	return n, region, err
}

// Channel maps a channel selector.
func Channel(c model.ChannelSelector) filter.ColorChannel {
	switch c {
	case model.ChannelR:
		return filter.ChannelR
	case model.ChannelG:
		return filter.ChannelG
	case model.ChannelB:
		return filter.ChannelB
	default:
		return filter.ChannelA
	}
}

func (a *assembler) displacementMap(p *model.DisplacementMap, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	in, displacement, region, err := a.binary(p, region, first)
	if err != nil {
		return nil, region, err
	}
	scale := float32(a.units.Scale(p.Scale, units.Other))
	if !mathx.Finite(scale) {
		return nil, region, ErrInvalidParams
	}
	n, err := a.env.Factory.DisplacementMap(Channel(p.XChannel), Channel(p.YChannel), scale, displacement, in, crop(region))
	return n, region, err
}
