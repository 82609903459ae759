package compile

import (
	"math"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/internal/mathx"
	"github.com/gogpu/svgfilter/model"
)

// Luma coefficients of the hueRotate and saturate matrices.
const (
	lumR = 0.213
	lumG = 0.715
	lumB = 0.072
)

// ColorMatrix returns the 4x5 matrix of a feColorMatrix.
func ColorMatrix(p *model.ColorMatrix) [20]float32 {
	switch p.Type {
	case model.ColorMatrixHueRotate:
		return HueRotateMatrix(firstOr(p.Values, 0))
	case model.ColorMatrixSaturate:
		return SaturateMatrix(firstOr(p.Values, 1))
	case model.ColorMatrixLuminanceToAlpha:
		return [20]float32{
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
			0.2125, 0.7154, 0.0721, 0, 0,
		}
	default:
		if len(p.Values) != 20 {
			return filter.IdentityMatrix()
		}
		var m [20]float32
		for i, v := range p.Values {
			m[i] = float32(v)
		}
		// Offsets are given on the 0-1 scale.
		m[4] *= 255
		m[9] *= 255
		m[14] *= 255
		m[19] *= 255
		return m
	}
}

// HueRotateMatrix returns the luma-preserving hue rotation by degrees.
func HueRotateMatrix(degrees float64) [20]float32 {
	hue := float64(float32(degrees * math.Pi / 180))
	c, s := math.Cos(hue), math.Sin(hue)
	return [20]float32{
		float32(lumR + c*0.787 - s*0.213),
		float32(lumG - c*0.715 - s*0.715),
		float32(lumB - c*0.072 + s*0.928), 0, 0,
		float32(lumR - c*0.213 + s*0.143),
		float32(lumG + c*0.285 + s*0.140),
		float32(lumB - c*0.072 - s*0.283), 0, 0,
		float32(lumR - c*0.213 - s*0.787),
		float32(lumG - c*0.715 + s*0.715),
		float32(lumB + c*0.928 + s*0.072), 0, 0,
		0, 0, 0, 1, 0,
	}
}

// SaturateMatrix interpolates between the luma matrix (0) and identity (1).
func SaturateMatrix(v float64) [20]float32 {
	s := float64(float32(v))
	return [20]float32{
		float32(lumR + 0.787*s), float32(lumG - 0.715*s), float32(lumB - 0.072*s), 0, 0,
		float32(lumR - 0.213*s), float32(lumG + 0.285*s), float32(lumB - 0.072*s), 0, 0,
		float32(lumR - 0.213*s), float32(lumG - 0.715*s), float32(lumB + 0.928*s), 0, 0,
		0, 0, 0, 1, 0,
	}
}

func firstOr(values []float64, def float64) float64 {
	if len(values) == 0 {
		return def
	}
	return values[0]
}

func (a *assembler) colorMatrix(p *model.ColorMatrix, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	in, region, err := a.unary(&p.Base, region, first)
	if err != nil {
		return nil, region, err
	}
	m := ColorMatrix(p)
	if !mathx.Finite(m[:]...) {
		return nil, region, ErrInvalidParams
	}
	n, err := a.env.Factory.ColorFilter(&filter.MatrixFilter{Matrix: m}, in, crop(region))
	return n, region, err
}

// TransferTable builds the 256-entry lookup table of one transfer
// function. A nil function is identity.
func TransferTable(fn *model.TransferFunc) [256]byte {
	t := filter.IdentityTable()
	if fn == nil {
		return t
	}

	switch fn.Type {
	case model.TransferTable:
		n := len(fn.TableValues)
		if n < 1 {
			return t
		}
		for i := range t {
			c := float64(i) / 255
			k := int(c * float64(n-1))
			v1 := fn.TableValues[k]
			v2 := fn.TableValues[min(k+1, n-1)]
			t[i] = mathx.ClampByte(255 * (v1 + (c*float64(n-1)-float64(k))*(v2-v1)))
		}
	case model.TransferDiscrete:
		n := len(fn.TableValues)
		if n < 1 {
			return t
		}
		for i := range t {
			k := min(int(float64(i*n)/255), n-1)
			t[i] = mathx.ClampByte(255 * fn.TableValues[k])
		}
	case model.TransferLinear:
		for i := range t {
			t[i] = mathx.ClampByte(fn.Slope*float64(i) + 255*fn.Intercept)
		}
	case model.TransferGamma:
		for i := range t {
			t[i] = mathx.ClampByte(255 * (fn.Amplitude*math.Pow(float64(i)/255, fn.Exponent) + fn.Offset))
		}
	}
	return t
}

func (a *assembler) componentTransfer(p *model.ComponentTransfer, region geom.Rect, first bool) (filter.Node, geom.Rect, error) {
	in, region, err := a.unary(&p.Base, region, first)
	if err != nil {
		return nil, region, err
	}
	cf := &filter.TableFilter{
		A: TransferTable(p.FuncA),
		R: TransferTable(p.FuncR),
		G: TransferTable(p.FuncG),
		B: TransferTable(p.FuncB),
	}
	n, err := a.env.Factory.ColorFilter(cf, in, crop(region))
	return n, region, err
}

func (a *assembler) flood(p *model.Flood, region geom.Rect) (filter.Node, geom.Rect, error) {
	c, ok := p.FloodColor.Resolve(a.env.Element.Color, filter.Black)
	if !ok {
		return nil, region, ErrUnsupportedColor
	}
	c = c.WithOpacity(p.FloodOpacity)
	cf := &filter.BlendColorFilter{Color: c, Mode: filter.BlendSource}
	n, err := a.env.Factory.ColorFilter(cf, nil, crop(region))
	return n, region, err
}
