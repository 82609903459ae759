package compile

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/filter/record"
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/model"
)

func TestColorMatrix(t *testing.T) {
	identity := filter.IdentityMatrix()

	tests := []struct {
		name string
		p    *model.ColorMatrix
		want [20]float32
	}{
		{"matrix without values", &model.ColorMatrix{}, identity},
		{"matrix with short values", &model.ColorMatrix{Values: []float64{1, 2, 3}}, identity},
		{"hueRotate default", &model.ColorMatrix{Type: model.ColorMatrixHueRotate}, HueRotateMatrix(0)},
		{"saturate default", &model.ColorMatrix{Type: model.ColorMatrixSaturate}, SaturateMatrix(1)},
		{"saturate zero", &model.ColorMatrix{Type: model.ColorMatrixSaturate, Values: []float64{0}}, [20]float32{
			lumR, lumG, lumB, 0, 0,
			lumR, lumG, lumB, 0, 0,
			lumR, lumG, lumB, 0, 0,
			0, 0, 0, 1, 0,
		}},
		{"luminanceToAlpha", &model.ColorMatrix{Type: model.ColorMatrixLuminanceToAlpha}, [20]float32{
			15: 0.2125, 16: 0.7154, 17: 0.0721,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorMatrix(tt.p)
			for i := range got {
				if math.Abs(float64(got[i]-tt.want[i])) > 1e-5 {
					t.Fatalf("m[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestColorMatrixOffsetsScale(t *testing.T) {
	values := make([]float64, 20)
	values[0], values[6], values[12], values[18] = 1, 1, 1, 1
	values[4], values[19] = 0.5, 1
	m := ColorMatrix(&model.ColorMatrix{Values: values})
	if m[4] != 127.5 || m[19] != 255 {
		t.Errorf("offsets = %v, %v, want 127.5, 255", m[4], m[19])
	}
	if m[0] != 1 || m[18] != 1 {
		t.Error("scale entries changed")
	}
}

func TestHueRotateIdentity(t *testing.T) {
	for _, deg := range []float64{0, 360} {
		m := HueRotateMatrix(deg)
		id := filter.IdentityMatrix()
		for i := range m {
			if math.Abs(float64(m[i]-id[i])) > 1e-3 {
				t.Errorf("hueRotate(%v)[%d] = %v, want %v", deg, i, m[i], id[i])
			}
		}
	}
}

func TestTransferTable(t *testing.T) {
	t.Run("nil is identity", func(t *testing.T) {
		if TransferTable(nil) != filter.IdentityTable() {
			t.Error("nil function is not identity")
		}
	})

	t.Run("empty table is identity", func(t *testing.T) {
		if TransferTable(model.NewTransferFunc(model.TransferTable)) != filter.IdentityTable() {
			t.Error("empty table is not identity")
		}
	})

	t.Run("table 0 1 approximates identity", func(t *testing.T) {
		fn := model.NewTransferFunc(model.TransferTable)
		fn.TableValues = []float64{0, 1}
		got := TransferTable(fn)
		for i, v := range got {
			if d := int(v) - i; d < -1 || d > 1 {
				t.Fatalf("t[%d] = %d", i, v)
			}
		}
	})

	t.Run("table inverts", func(t *testing.T) {
		fn := model.NewTransferFunc(model.TransferTable)
		fn.TableValues = []float64{1, 0}
		got := TransferTable(fn)
		if got[0] != 255 || got[255] != 0 {
			t.Errorf("t[0], t[255] = %d, %d", got[0], got[255])
		}
	})

	t.Run("discrete steps", func(t *testing.T) {
		fn := model.NewTransferFunc(model.TransferDiscrete)
		fn.TableValues = []float64{0, 1}
		got := TransferTable(fn)
		if got[0] != 0 || got[127] != 0 || got[128] != 255 || got[255] != 255 {
			t.Errorf("t[0,127,128,255] = %d %d %d %d", got[0], got[127], got[128], got[255])
		}
	})

	t.Run("linear", func(t *testing.T) {
		fn := model.NewTransferFunc(model.TransferLinear)
		fn.Slope = 0.5
		fn.Intercept = 0.25
		got := TransferTable(fn)
		if got[0] != 63 || got[200] != 163 {
			t.Errorf("t[0], t[200] = %d, %d, want 63, 163", got[0], got[200])
		}
	})

	t.Run("gamma clamps", func(t *testing.T) {
		fn := model.NewTransferFunc(model.TransferGamma)
		fn.Amplitude = 2
		got := TransferTable(fn)
		if got[255] != 255 || got[0] != 0 {
			t.Errorf("t[0], t[255] = %d, %d", got[0], got[255])
		}
	})
}

func TestComponentTransferNode(t *testing.T) {
	fn := model.NewTransferFunc(model.TransferLinear)
	fn.Slope = 0
	res, f := assemble(t, &model.ComponentTransfer{FuncA: fn})

	op := opOf(t, f, requireOK(t, res, 0).Node)
	cf, ok := op.Params.(*record.ColorFilterParams).Filter.(*filter.TableFilter)
	if !ok {
		t.Fatalf("filter is %T, want *TableFilter", op.Params.(*record.ColorFilterParams).Filter)
	}
	if cf.R != filter.IdentityTable() {
		t.Error("absent red function is not identity")
	}
	if cf.A[255] != 0 {
		t.Errorf("alpha table[255] = %d, want 0", cf.A[255])
	}
}

func TestFlood(t *testing.T) {
	tests := []struct {
		name    string
		color   model.ColorValue
		opacity float64
		want    filter.Color
		err     error
	}{
		{"default black", model.ColorValue{}, 1, filter.Black, nil},
		{"explicit", model.RGB(filter.Color{R: 255, A: 255}), 1, filter.Color{R: 255, A: 255}, nil},
		{"currentColor with opacity", model.CurrentColor, 0.5, filter.Color{R: 10, G: 20, B: 30, A: 128}, nil},
		{"opacity clamps", model.ColorValue{}, 3, filter.Black, nil},
		{"unsupported", model.ColorValue{Kind: model.ColorUnsupported}, 1, filter.Color{}, ErrUnsupportedColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.NewFlood()
			p.FloodColor = tt.color
			p.FloodOpacity = tt.opacity
			res, f := assemble(t, p)
			if tt.err != nil {
				requireErr(t, res, 0, tt.err)
				return
			}
			op := opOf(t, f, requireOK(t, res, 0).Node)
			if op.Inputs[0].IsValid() {
				t.Error("flood has an input")
			}
			cf := op.Params.(*record.ColorFilterParams).Filter.(*filter.BlendColorFilter)
			if cf.Color != tt.want || cf.Mode != filter.BlendSource {
				t.Errorf("flood = %+v, want color %+v mode Source", cf, tt.want)
			}
			if op.Crop == nil || *op.Crop != testFilterRegion {
				t.Errorf("crop = %v, want filter region", op.Crop)
			}
		})
	}
}

func TestCompositeArithmetic(t *testing.T) {
	res, f := assemble(t,
		floodAt("a", 0, 0, 10, 10),
		floodAt("b", 0, 0, 10, 10),
		&model.Composite{Base: model.Base{In: "a"}, In2: "b", Operator: model.CompositeArithmetic, K2: 1},
	)
	op := opOf(t, f, requireOK(t, res, 2).Node)
	if op.Kind != record.KindArithmetic {
		t.Fatalf("kind = %v, want Arithmetic", op.Kind)
	}
	p := op.Params.(*record.ArithmeticParams)
	if p.K1 != 0 || p.K2 != 1 || p.K3 != 0 || p.K4 != 0 || p.EnforcePM {
		t.Errorf("params = %+v", p)
	}
	a, b := refOf(t, res.Outcomes[0].Node), refOf(t, res.Outcomes[1].Node)
	if op.Inputs[0] != b || op.Inputs[1] != a {
		t.Errorf("inputs = %v, want [%d %d]", op.Inputs, b, a)
	}
}

func TestCompositeModes(t *testing.T) {
	tests := []struct {
		op   model.CompositeOperator
		want filter.BlendMode
	}{
		{model.CompositeOver, filter.BlendSourceOver},
		{model.CompositeIn, filter.BlendSourceIn},
		{model.CompositeOut, filter.BlendSourceOut},
		{model.CompositeAtop, filter.BlendSourceAtop},
		{model.CompositeXor, filter.BlendXor},
	}
	for _, tt := range tests {
		if got := CompositeMode(tt.op); got != tt.want {
			t.Errorf("CompositeMode(%v) = %v, want %v", tt.op, got, tt.want)
		}
	}
	if got := BlendMode(model.BlendNormal); got != filter.BlendSourceOver {
		t.Errorf("BlendMode(normal) = %v", got)
	}
	if got := BlendMode(model.BlendLuminosity); got != filter.BlendLuminosity {
		t.Errorf("BlendMode(luminosity) = %v", got)
	}
}

func TestConvolveMatrix(t *testing.T) {
	identity := []float64{0, 0, 0, 0, 1, 0, 0, 0, 0}
	target := func(v int) *int { return &v }

	tests := []struct {
		name string
		p    *model.ConvolveMatrix
		err  error
		want func(*testing.T, filter.Kernel)
	}{
		{
			name: "identity kernel",
			p:    &model.ConvolveMatrix{KernelMatrix: identity},
			want: func(t *testing.T, k filter.Kernel) {
				if k.Width != 3 || k.Height != 3 || k.OffsetX != 1 || k.OffsetY != 1 {
					t.Errorf("kernel = %+v", k)
				}
				if k.Gain != 1 || k.Bias != 0 || !k.ConvolveAlpha || k.Tile != filter.TileClamp {
					t.Errorf("kernel = %+v", k)
				}
			},
		},
		{
			name: "weights reversed",
			p:    &model.ConvolveMatrix{Order: model.OptionalNumbers{2, 1}, KernelMatrix: []float64{1, 3}},
			want: func(t *testing.T, k filter.Kernel) {
				if k.Weights[0] != 3 || k.Weights[1] != 1 {
					t.Errorf("weights = %v", k.Weights)
				}
				if k.Gain != 0.25 {
					t.Errorf("gain = %v, want 1/sum", k.Gain)
				}
			},
		},
		{
			name: "zero sum divisor",
			p:    &model.ConvolveMatrix{Order: model.OptionalNumbers{2, 1}, KernelMatrix: []float64{1, -1}},
			want: func(t *testing.T, k filter.Kernel) {
				if k.Gain != 1 {
					t.Errorf("gain = %v, want 1", k.Gain)
				}
			},
		},
		{
			name: "explicit divisor bias target edge",
			p: &model.ConvolveMatrix{
				KernelMatrix: identity, Divisor: 2, Bias: 0.5,
				TargetX: target(0), TargetY: target(2),
				EdgeMode: model.EdgeWrap, PreserveAlpha: true,
			},
			want: func(t *testing.T, k filter.Kernel) {
				if k.Gain != 0.5 || k.Bias != 127.5 || k.OffsetX != 0 || k.OffsetY != 2 {
					t.Errorf("kernel = %+v", k)
				}
				if k.Tile != filter.TileRepeat || k.ConvolveAlpha {
					t.Errorf("kernel = %+v", k)
				}
			},
		},
		{name: "size mismatch", p: &model.ConvolveMatrix{KernelMatrix: []float64{1, 2}}, err: ErrInvalidParams},
		{name: "empty kernel", p: &model.ConvolveMatrix{}, err: ErrInvalidParams},
		{name: "zero order", p: &model.ConvolveMatrix{Order: model.OptionalNumbers{0}, KernelMatrix: identity}, err: ErrInvalidParams},
		{name: "target out of range", p: &model.ConvolveMatrix{KernelMatrix: identity, TargetX: target(3)}, err: ErrInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, f := assemble(t, tt.p)
			if tt.err != nil {
				requireErr(t, res, 0, tt.err)
				return
			}
			op := opOf(t, f, requireOK(t, res, 0).Node)
			tt.want(t, op.Params.(*record.ConvolutionParams).Kernel)
		})
	}
}

func TestEdgeTileMode(t *testing.T) {
	if EdgeTileMode(model.EdgeDuplicate) != filter.TileClamp ||
		EdgeTileMode(model.EdgeWrap) != filter.TileRepeat ||
		EdgeTileMode(model.EdgeNone) != filter.TileDecal {
		t.Error("edge mode mapping")
	}
}

func TestGaussianBlur(t *testing.T) {
	tests := []struct {
		name   string
		std    model.OptionalNumbers
		sx, sy float32
		err    error
	}{
		{"absent", nil, 0, 0, nil},
		{"single", model.OptionalNumbers{3}, 3, 3, nil},
		{"pair", model.OptionalNumbers{1, 2}, 1, 2, nil},
		{"one negative", model.OptionalNumbers{-1, 2}, 0, 2, nil},
		{"both negative", model.OptionalNumbers{-1}, 0, 0, ErrInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, f := assemble(t, &model.GaussianBlur{StdDeviation: tt.std})
			if tt.err != nil {
				requireErr(t, res, 0, tt.err)
				return
			}
			p := opOf(t, f, requireOK(t, res, 0).Node).Params.(*record.BlurParams)
			if p.SigmaX != tt.sx || p.SigmaY != tt.sy {
				t.Errorf("sigma = %v,%v, want %v,%v", p.SigmaX, p.SigmaY, tt.sx, tt.sy)
			}
		})
	}
}

func TestObjectBoundingBoxScaling(t *testing.T) {
	env, f := newTestEnv()
	env.BBox = geom.XYWH(20, 30, 30, 40)

	spot := model.NewSpotLight()
	spot.X, spot.Y, spot.Z = 0.5, 0.5, 1

	c := chainOf(model.ObjectBoundingBox,
		&model.GaussianBlur{StdDeviation: model.OptionalNumbers{0.1}},
		&model.Offset{Dx: model.Number(0.5), Dy: model.Percent(50)},
		&model.DisplacementMap{In2: "SourceGraphic", Scale: 2},
		model.NewDiffuseLighting(spot),
	)
	res := Assemble(c, testFilterRegion, env)

	diag := env.BBox.Diagonal()

	blur := opOf(t, f, requireOK(t, res, 0).Node).Params.(*record.BlurParams)
	if math.Abs(float64(blur.SigmaX)-0.1*diag) > 1e-4 {
		t.Errorf("sigma = %v, want %v", blur.SigmaX, 0.1*diag)
	}

	off := opOf(t, f, requireOK(t, res, 1).Node).Params.(*record.OffsetParams)
	if off.DX != 15 || off.DY != 20 {
		t.Errorf("offset = %v,%v, want 15,20", off.DX, off.DY)
	}

	disp := opOf(t, f, requireOK(t, res, 2).Node).Params.(*record.DisplacementParams)
	if math.Abs(float64(disp.Scale)-2*diag) > 1e-4 {
		t.Errorf("scale = %v, want %v", disp.Scale, 2*diag)
	}

	light := opOf(t, f, requireOK(t, res, 3).Node).Params.(*record.LightingParams)
	if light.Location.X != 15 || light.Location.Y != 20 || math.Abs(light.Location.Z-diag) > 1e-9 {
		t.Errorf("location = %+v", light.Location)
	}
}

func TestMorphology(t *testing.T) {
	tests := []struct {
		name   string
		p      *model.Morphology
		op     filter.MorphologyOp
		rx, ry int
		err    error
	}{
		{"dilate", &model.Morphology{Operator: model.MorphologyDilate, Radius: model.OptionalNumbers{2.7}}, filter.Dilate, 2, 2, nil},
		{"erode pair", &model.Morphology{Radius: model.OptionalNumbers{1, 3}}, filter.Erode, 1, 3, nil},
		{"one negative", &model.Morphology{Radius: model.OptionalNumbers{-1, 3}}, filter.Erode, 0, 3, nil},
		{"absent", &model.Morphology{}, 0, 0, 0, ErrInvalidParams},
		{"zero", &model.Morphology{Radius: model.OptionalNumbers{0}}, 0, 0, 0, ErrInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, f := assemble(t, tt.p)
			if tt.err != nil {
				requireErr(t, res, 0, tt.err)
				return
			}
			p := opOf(t, f, requireOK(t, res, 0).Node).Params.(*record.MorphologyParams)
			if p.Op != tt.op || p.RadiusX != tt.rx || p.RadiusY != tt.ry {
				t.Errorf("params = %+v", p)
			}
		})
	}
}

func TestTileRegions(t *testing.T) {
	tile := &model.Tile{Base: model.Base{In: "a"}}
	tile.X, tile.Y, tile.Width, tile.Height = region(0, 0, 100, 100)

	res, f := assemble(t, floodAt("a", 10, 10, 20, 20), tile)

	out := requireOK(t, res, 1)
	p := opOf(t, f, out.Node).Params.(*record.TileParams)
	if p.Src != geom.XYWH(10, 10, 20, 20) {
		t.Errorf("src = %+v, want the input region", p.Src)
	}
	if p.Dst != geom.XYWH(0, 0, 100, 100) || out.Region != p.Dst {
		t.Errorf("dst = %+v region = %+v, want declared", p.Dst, out.Region)
	}
}

func TestMerge(t *testing.T) {
	res, f := assemble(t,
		floodAt("a", 0, 0, 10, 10),
		&model.Merge{Nodes: []model.MergeNode{{In: "a"}, {In: "SourceGraphic"}, {}}},
		&model.Merge{},
		&model.Merge{Nodes: []model.MergeNode{{In: "missing"}}},
	)

	out := requireOK(t, res, 1)
	op := opOf(t, f, out.Node)
	if len(op.Inputs) != 3 {
		t.Fatalf("inputs = %v, want 3", op.Inputs)
	}
	a := refOf(t, res.Outcomes[0].Node)
	if op.Inputs[0] != a || op.Inputs[2] != a {
		t.Errorf("inputs = %v, want a, SourceGraphic, last(a)", op.Inputs)
	}
	if out.Region != testFilterRegion {
		t.Errorf("merge region = %+v, want declared", out.Region)
	}
	requireErr(t, res, 2, ErrInvalidParams)
	requireErr(t, res, 3, ErrMissingInput)
}

func TestLighting(t *testing.T) {
	cone := func(v float64) *float64 { return &v }

	t.Run("distant diffuse", func(t *testing.T) {
		p := model.NewDiffuseLighting(&model.DistantLight{Azimuth: 90, Elevation: 0})
		p.DiffuseConstant = -2
		res, f := assemble(t, p)
		op := opOf(t, f, requireOK(t, res, 0).Node)
		if op.Kind != record.KindDistantLitDiffuse {
			t.Fatalf("kind = %v", op.Kind)
		}
		lp := op.Params.(*record.LightingParams)
		if math.Abs(lp.Direction.Y-1) > 1e-9 || math.Abs(lp.Direction.X) > 1e-9 {
			t.Errorf("direction = %+v", lp.Direction)
		}
		if lp.Constant != 0 || lp.Color != filter.White || lp.SurfaceScale != 1 {
			t.Errorf("params = %+v", lp)
		}
	})

	t.Run("spot cone clamps", func(t *testing.T) {
		spot := model.NewSpotLight()
		spot.LimitingConeAngle = cone(120)
		spot.PointsAtX = 5
		res, f := assemble(t, model.NewSpecularLighting(spot))
		op := opOf(t, f, requireOK(t, res, 0).Node)
		if op.Kind != record.KindSpotLitSpecular {
			t.Fatalf("kind = %v", op.Kind)
		}
		lp := op.Params.(*record.LightingParams)
		if lp.CutoffAngle != 90 || lp.Target.X != 5 || lp.SpecularExponent != 1 {
			t.Errorf("params = %+v", lp)
		}
	})

	t.Run("point specular currentColor", func(t *testing.T) {
		p := model.NewSpecularLighting(&model.PointLight{X: 1, Y: 2, Z: 3})
		p.LightingColor = model.CurrentColor
		p.SpecularExponent = 20
		res, f := assemble(t, p)
		op := opOf(t, f, requireOK(t, res, 0).Node)
		lp := op.Params.(*record.LightingParams)
		if op.Kind != record.KindPointLitSpecular || lp.Color != testCurrentColor || lp.Shininess != 20 {
			t.Errorf("op = %v %+v", op.Kind, lp)
		}
		if lp.Location != (geom.Point3{X: 1, Y: 2, Z: 3}) {
			t.Errorf("location = %+v", lp.Location)
		}
	})

	t.Run("no light", func(t *testing.T) {
		var typedNil *model.PointLight
		res, _ := assemble(t, model.NewDiffuseLighting(nil), model.NewDiffuseLighting(typedNil))
		requireErr(t, res, 0, ErrNoLight)
		requireErr(t, res, 1, ErrNoLight)
	})

	t.Run("unsupported color", func(t *testing.T) {
		p := model.NewDiffuseLighting(nil)
		p.LightingColor = model.ColorValue{Kind: model.ColorUnsupported}
		res, _ := assemble(t, p)
		requireErr(t, res, 0, ErrUnsupportedColor)
	})
}

func TestConeAngle(t *testing.T) {
	v := func(f float64) *float64 { return &f }
	tests := []struct {
		in   *float64
		want float32
	}{
		{nil, 90},
		{v(30), 30},
		{v(-45), -45},
		{v(91), 90},
		{v(-91), 90},
		{v(math.NaN()), 90},
	}
	for _, tt := range tests {
		if got := ConeAngle(&model.SpotLight{LimitingConeAngle: tt.in}); got != tt.want {
			t.Errorf("ConeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTurbulence(t *testing.T) {
	t.Run("stitched fractal noise", func(t *testing.T) {
		p := model.NewTurbulence()
		p.Type = model.TurbulenceFractalNoise
		p.BaseFrequency = model.OptionalNumbers{0.05}
		p.StitchTiles = true
		p.X, p.Y, p.Width, p.Height = region(0, 0, 40.4, 19.6)
		res, f := assemble(t, p)

		op := opOf(t, f, requireOK(t, res, 0).Node)
		paint := op.Params.(*record.PaintParams).Paint
		s := paint.Shader
		if s == nil || s.Type != filter.FractalNoise || s.Octaves != 1 {
			t.Fatalf("shader = %+v", s)
		}
		if s.BaseFrequencyX != 0.05 || s.BaseFrequencyY != 0.05 {
			t.Errorf("frequency = %v,%v", s.BaseFrequencyX, s.BaseFrequencyY)
		}
		if !s.Stitched() || s.TileWidth != 40 || s.TileHeight != 20 {
			t.Errorf("tile = %dx%d", s.TileWidth, s.TileHeight)
		}
		if paint.Style != filter.StyleFillAndStroke {
			t.Errorf("style = %v", paint.Style)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		negFreq := model.NewTurbulence()
		negFreq.BaseFrequency = model.OptionalNumbers{0.1, -0.1}
		negOct := model.NewTurbulence()
		negOct.NumOctaves = -1
		res, _ := assemble(t, negFreq, negOct)
		requireErr(t, res, 0, ErrInvalidParams)
		requireErr(t, res, 1, ErrInvalidParams)
	})
}

func TestImage(t *testing.T) {
	raster := rgbaImage(50, 25)
	frag := stubFragment{w: 10, h: 10}
	loader := stubLoader{
		"raster.png": {Image: raster},
		"#frag":      {Fragment: frag},
		"empty":      {},
	}

	t.Run("raster meet", func(t *testing.T) {
		env, f := newTestEnv()
		env.Assets = loader
		p := &model.Image{Href: "raster.png"}
		p.X, p.Y, p.Width, p.Height = region(0, 0, 100, 100)
		res := Assemble(chainOf(model.UserSpaceOnUse, p), testFilterRegion, env)

		ip := opOf(t, f, requireOK(t, res, 0).Node).Params.(*record.ImageParams)
		if ip.Image != raster || ip.Quality != filter.QualityHigh {
			t.Errorf("params = %+v", ip)
		}
		if ip.Src != geom.XYWH(0, 0, 50, 25) || ip.Dst != geom.XYWH(0, 25, 100, 50) {
			t.Errorf("src = %+v dst = %+v", ip.Src, ip.Dst)
		}
	})

	t.Run("fragment", func(t *testing.T) {
		env, f := newTestEnv()
		env.Assets = loader
		p := &model.Image{Href: "#frag"}
		p.X, p.Y, p.Width, p.Height = region(10, 20, 30, 30)
		res := Assemble(chainOf(model.UserSpaceOnUse, p), testFilterRegion, env)

		pp := opOf(t, f, requireOK(t, res, 0).Node).Params.(*record.PictureParams)
		if pp.Cull != geom.XYWH(10, 20, 30, 30) {
			t.Errorf("cull = %+v", pp.Cull)
		}
		want := geom.Matrix{A: 3, C: 10, E: 3, F: 20}
		if pp.Picture.Transform != want {
			t.Errorf("transform = %+v, want %+v", pp.Picture.Transform, want)
		}
		if pp.Picture.Payload != frag {
			t.Errorf("payload = %v", pp.Picture.Payload)
		}
	})

	t.Run("snapshot failure", func(t *testing.T) {
		env, _ := newTestEnv()
		env.Assets = loader
		boom := errors.New("boom")
		env.Renderer = filter.FragmentRendererFunc(func(filter.Fragment, geom.Rect, geom.Matrix) (*filter.Picture, error) {
			return nil, boom
		})
		res := Assemble(chainOf(model.UserSpaceOnUse, &model.Image{Href: "#frag"}), testFilterRegion, env)
		requireErr(t, res, 0, boom)
	})

	t.Run("unavailable", func(t *testing.T) {
		env, _ := newTestEnv()
		res := Assemble(chainOf(model.UserSpaceOnUse, &model.Image{Href: "raster.png"}), testFilterRegion, env)
		requireErr(t, res, 0, ErrNoAsset)

		env.Assets = loader
		res = Assemble(chainOf(model.UserSpaceOnUse,
			&model.Image{},
			&model.Image{Href: "empty"},
			&model.Image{Href: "missing"},
		), testFilterRegion, env)
		requireErr(t, res, 0, ErrNoAsset)
		requireErr(t, res, 1, ErrNoAsset)
		if res.Outcomes[2].Err == nil {
			t.Error("missing href did not fail")
		}
	})
}

func TestStandardInputs(t *testing.T) {
	res, f := assemble(t,
		&model.Offset{Base: model.Base{In: "SourceAlpha"}},
		&model.Offset{Base: model.Base{In: "BackgroundImage"}},
		&model.Offset{Base: model.Base{In: "FillPaint"}},
		&model.Offset{Base: model.Base{In: "StrokePaint"}},
	)

	alpha, _ := f.Op(opOf(t, f, requireOK(t, res, 0).Node).Inputs[0])
	if alpha.Kind != record.KindColorFilter {
		t.Errorf("SourceAlpha = %v, want ColorFilter", alpha.Kind)
	}
	bg, _ := f.Op(opOf(t, f, requireOK(t, res, 1).Node).Inputs[0])
	if bg.Kind != record.KindPaint || bg.Params.(*record.PaintParams).Paint.Color != filter.BackdropFallback {
		t.Errorf("BackgroundImage = %v, want the opaque backdrop fallback", bg.Kind)
	}
	fill, _ := f.Op(opOf(t, f, requireOK(t, res, 2).Node).Inputs[0])
	if fill.Kind != record.KindPaint {
		t.Errorf("FillPaint = %v, want Paint", fill.Kind)
	}
	requireErr(t, res, 3, ErrMissingInput)
}
