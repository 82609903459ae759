package compile

import (
	"math"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/internal/mathx"
	"github.com/gogpu/svgfilter/model"
)

// image draws a raster or a nested fragment fitted into the region.
func (a *assembler) image(p *model.Image, region geom.Rect) (filter.Node, geom.Rect, error) {
	if a.env.Assets == nil || p.Href == "" {
		return nil, region, ErrNoAsset
	}
	asset, err := a.env.Assets.Load(p.Href)
	if err != nil {
		return nil, region, err
	}
	if asset == nil {
		return nil, region, ErrNoAsset
	}

	switch {
	case asset.Image != nil:
		src := asset.Image.Bounds()
		if src.IsEmpty() {
			return nil, region, ErrInvalidParams
		}
		dst := p.AspectRatio.Fit(src, region)
		n, err := a.env.Factory.Image(asset.Image, src, dst, filter.QualityHigh)
		return n, region, err

	case asset.Fragment != nil:
		w, h := asset.Fragment.Size()
		src := geom.XYWH(0, 0, w, h)
		if src.IsEmpty() {
			return nil, region, ErrInvalidParams
		}
		dst := p.AspectRatio.Fit(src, region)
		m := geom.Identity().
			PreConcat(geom.Translate(dst.MinX, dst.MinY)).
			PreConcat(geom.Scale(dst.Width()/w, dst.Height()/h))

		renderer := a.env.Renderer
		if renderer == nil {
			renderer = filter.DeferredSnapshot
		}
		pic, err := renderer.Snapshot(asset.Fragment, dst, m)
		if err != nil {
			a.log.Warn("svgfilter: fragment snapshot failed", "href", p.Href, "err", err)
			return nil, region, err
		}
		n, err := a.env.Factory.Picture(pic, dst)
		return n, region, err

	default:
		return nil, region, ErrNoAsset
	}
}

// turbulence fills the region with Perlin noise.
func (a *assembler) turbulence(p *model.Turbulence, region geom.Rect) (filter.Node, geom.Rect, error) {
	fx, fy := p.BaseFrequency.Pair(0, 0)
	if fx < 0 || fy < 0 || p.NumOctaves < 0 {
		return nil, region, ErrInvalidParams
	}

	shader := &filter.PerlinNoise{
		Type:           filter.Turbulence,
		BaseFrequencyX: float32(fx),
		BaseFrequencyY: float32(fy),
		Octaves:        p.NumOctaves,
		Seed:           float32(p.Seed),
	}
	if p.Type == model.TurbulenceFractalNoise {
		shader.Type = filter.FractalNoise
	}
	if !mathx.Finite(shader.BaseFrequencyX, shader.BaseFrequencyY, shader.Seed) {
		return nil, region, ErrInvalidParams
	}
	if p.StitchTiles {
		shader.TileWidth = int(math.Round(region.Width()))
		shader.TileHeight = int(math.Round(region.Height()))
	}

	paint := &filter.Paint{Style: filter.StyleFillAndStroke, Shader: shader}
	n, err := a.env.Factory.Paint(paint, crop(region))
	return n, region, err
}
