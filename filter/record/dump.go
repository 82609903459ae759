package record

import (
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
)

// Dump writes a textual listing of the recorded graph, one op per line:
//
//	graph 6f1c...: 3 ops
//	#0 Picture cull=[0,0 100x100]
//	#1 Blur in=[#0] crop=[-10,-10 120x120] sigma=4,4
//	#2 Offset in=[#1] crop=[-10,-10 120x120] d=2,2
//
// An input shown as "src" is the filtered content itself.
func (f *Factory) Dump(w io.Writer) error {
	f.mu.Lock()
	ops := make([]Op, len(f.ops))
	copy(ops, f.ops)
	id := f.id
	f.mu.Unlock()

	if _, err := fmt.Fprintf(w, "graph %s: %d ops\n", id, len(ops)); err != nil {
		return err
	}
	for i := range ops {
		if _, err := fmt.Fprintf(w, "#%d %s\n", i, FormatOp(&ops[i])); err != nil {
			return err
		}
	}
	return nil
}

// FormatOp formats a single op the way Dump prints it, without the index.
func FormatOp(op *Op) string {
	var sb strings.Builder
	sb.WriteString(op.Kind.String())

	if len(op.Inputs) > 0 {
		sb.WriteString(" in=[")
		for i, r := range op.Inputs {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if r.IsValid() {
				fmt.Fprintf(&sb, "#%d", r)
			} else {
				sb.WriteString("src")
			}
		}
		sb.WriteByte(']')
	}
	if op.Crop != nil {
		sb.WriteString(" crop=")
		sb.WriteString(formatRect(*op.Crop))
	}
	if p := formatParams(op.Params); p != "" {
		sb.WriteByte(' ')
		sb.WriteString(p)
	}
	return sb.String()
}

func formatRect(r geom.Rect) string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.MinX, r.MinY, r.Width(), r.Height())
}

func formatColor(c filter.Color) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func formatPoint(p geom.Point3) string {
	return fmt.Sprintf("(%g,%g,%g)", p.X, p.Y, p.Z)
}

func formatParams(params any) string {
	switch p := params.(type) {
	case *BlendParams:
		return "mode=" + p.Mode.String()
	case *ArithmeticParams:
		return fmt.Sprintf("k=%g,%g,%g,%g pm=%t", p.K1, p.K2, p.K3, p.K4, p.EnforcePM)
	case *ColorFilterParams:
		return formatColorFilter(p.Filter)
	case *BlurParams:
		return fmt.Sprintf("sigma=%g,%g", p.SigmaX, p.SigmaY)
	case *MorphologyParams:
		return fmt.Sprintf("op=%s radius=%d,%d", p.Op, p.RadiusX, p.RadiusY)
	case *OffsetParams:
		return fmt.Sprintf("d=%g,%g", p.DX, p.DY)
	case *DisplacementParams:
		return fmt.Sprintf("channels=%s%s scale=%g", p.XChannel, p.YChannel, p.Scale)
	case *LightingParams:
		return fmt.Sprintf("dir=%s loc=%s target=%s exp=%g cone=%g color=%s surface=%g k=%g shininess=%g",
			formatPoint(p.Direction), formatPoint(p.Location), formatPoint(p.Target),
			p.SpecularExponent, p.CutoffAngle, formatColor(p.Color), p.SurfaceScale, p.Constant, p.Shininess)
	case *ConvolutionParams:
		k := p.Kernel
		return fmt.Sprintf("size=%dx%d weights=%v gain=%g bias=%g target=%d,%d tile=%s alpha=%t",
			k.Width, k.Height, k.Weights, k.Gain, k.Bias, k.OffsetX, k.OffsetY, k.Tile, k.ConvolveAlpha)
	case *TileParams:
		return "src=" + formatRect(p.Src) + " dst=" + formatRect(p.Dst)
	case *ImageParams:
		return fmt.Sprintf("size=%dx%d src=%s dst=%s", p.Image.Width(), p.Image.Height(), formatRect(p.Src), formatRect(p.Dst))
	case *PictureParams:
		return "cull=" + formatRect(p.Cull)
	case *PaintParams:
		return formatPaint(p.Paint)
	default:
		return ""
	}
}

func formatColorFilter(cf filter.ColorFilter) string {
	switch c := cf.(type) {
	case *filter.MatrixFilter:
		return fmt.Sprintf("matrix=%v", c.Matrix)
	case *filter.TableFilter:
		return "table"
	case *filter.BlendColorFilter:
		return fmt.Sprintf("color=%s mode=%s", formatColor(c.Color), c.Mode)
	default:
		return fmt.Sprintf("%T", cf)
	}
}

func formatPaint(p *filter.Paint) string {
	if p.Shader != nil {
		s := p.Shader
		return fmt.Sprintf("style=%s shader=%s freq=%g,%g octaves=%d seed=%g tile=%dx%d",
			p.Style, s.Type, s.BaseFrequencyX, s.BaseFrequencyY, s.Octaves, s.Seed, s.TileWidth, s.TileHeight)
	}
	return fmt.Sprintf("style=%s color=%s", p.Style, formatColor(p.Color))
}
