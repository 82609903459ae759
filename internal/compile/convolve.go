package compile

import (
	"math"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/internal/mathx"
	"github.com/gogpu/svgfilter/internal/units"
	"github.com/gogpu/svgfilter/model"
)

// EdgeTileMode maps a convolution edge mode.
func EdgeTileMode(m model.EdgeMode) filter.TileMode {
	switch m {
	case model.EdgeWrap:
		return filter.TileRepeat
	case model.EdgeNone:
		return filter.TileDecal
	default:
		return filter.TileClamp
	}
}

// kernel derives the backend kernel of a feConvolveMatrix. The order is
// scaled by the bounding box in object bounding box mode.
func (a *assembler) kernel(p *model.ConvolveMatrix) (filter.Kernel, error) {
	ox, oy := p.Order.Pair(3, 3)
	ox = a.units.Scale(ox, units.Horizontal)
	oy = a.units.Scale(oy, units.Vertical)
	if !(ox > 0) || !(oy > 0) || math.IsInf(ox, 0) || math.IsInf(oy, 0) {
		return filter.Kernel{}, ErrInvalidParams
	}

	w, h := int(ox), int(oy)
	count := len(p.KernelMatrix)
	if count == 0 || w*h != count {
		return filter.Kernel{}, ErrInvalidParams
	}

	// The backend correlates; reversing the kernel turns that into the
	// convolution SVG asks for.
	weights := make([]float32, count)
	for i := range weights {
		weights[i] = float32(p.KernelMatrix[count-1-i])
	}

	divisor := float32(p.Divisor)
	if divisor == 0 {
		for _, v := range weights {
			divisor += v
		}
		if divisor == 0 {
			divisor = 1
		}
	}

	tx, ty := w/2, h/2
	if p.TargetX != nil {
		tx = *p.TargetX
	}
	if p.TargetY != nil {
		ty = *p.TargetY
	}
	if tx < 0 || tx >= w || ty < 0 || ty >= h {
		return filter.Kernel{}, ErrInvalidParams
	}

	k := filter.Kernel{
		Width:         w,
		Height:        h,
		Weights:       weights,
		Gain:          1 / divisor,
		Bias:          float32(p.Bias) * 255,
		OffsetX:       tx,
		OffsetY:       ty,
		Tile:          EdgeTileMode(p.EdgeMode),
		ConvolveAlpha: !p.PreserveAlpha,
	}
	if !mathx.Finite(k.Gain, k.Bias) || !mathx.Finite(weights...) {
		return filter.Kernel{}, ErrInvalidParams
	}
	return k, nil
}

func (a *assembler) convolveMatrix(p *model.ConvolveMatrix, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	in, region, err := a.unary(&p.Base, region, first)
	if err != nil {
		return nil, region, err
	}
	k, err := a.kernel(p)
	if err != nil {
		return nil, region, err
	}
	n, err := a.env.Factory.MatrixConvolution(k, in, crop(region))
	return n, region, err
}
