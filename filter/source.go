package filter

import "github.com/gogpu/svgfilter/geom"

// ContentSource supplies the content a filter chain starts from.
// Each method may return nil when the content is unavailable.
type ContentSource interface {
	// SourceGraphic returns the element's own rendering.
	SourceGraphic() *Picture

	// BackgroundImage returns the accumulated backdrop behind the element.
	BackgroundImage() *Picture

	FillPaint() *Paint
	StrokePaint() *Paint
}

// StaticSource is a ContentSource backed by fixed values.
type StaticSource struct {
	Graphic    *Picture
	Background *Picture
	Fill       *Paint
	Stroke     *Paint
}

func (s *StaticSource) SourceGraphic() *Picture   { return s.Graphic }
func (s *StaticSource) BackgroundImage() *Picture { return s.Background }
func (s *StaticSource) FillPaint() *Paint         { return s.Fill }
func (s *StaticSource) StrokePaint() *Paint       { return s.Stroke }

// Fragment is a nested graphics fragment referenced by an image.
type Fragment interface {
	// Size returns the natural size of the fragment.
	Size() (w, h float64)
}

// Asset is the result of loading an image reference. Exactly one of
// Image and Fragment is set.
type Asset struct {
	Image    *Image
	Fragment Fragment
}

// AssetLoader resolves an image reference.
type AssetLoader interface {
	Load(href string) (*Asset, error)
}

// FragmentRenderer renders a fragment into a snapshot covering dst, with
// m mapping fragment coordinates to device space.
type FragmentRenderer interface {
	Snapshot(f Fragment, dst geom.Rect, m geom.Matrix) (*Picture, error)
}

// FragmentRendererFunc adapts a function to FragmentRenderer.
type FragmentRendererFunc func(f Fragment, dst geom.Rect, m geom.Matrix) (*Picture, error)

// Snapshot calls fn.
func (fn FragmentRendererFunc) Snapshot(f Fragment, dst geom.Rect, m geom.Matrix) (*Picture, error) {
	return fn(f, dst, m)
}

// DeferredSnapshot records the fragment itself as the picture payload,
// leaving the actual rendering to the backend.
var DeferredSnapshot FragmentRenderer = FragmentRendererFunc(
	func(f Fragment, dst geom.Rect, m geom.Matrix) (*Picture, error) {
		if f == nil {
			return nil, ErrNoFragment
		}
		return &Picture{Cull: dst, Transform: m, Payload: f}, nil
	})
