package resolve

import (
	"github.com/gogpu/svgfilter/filter"
)

// Standard input names.
const (
	SourceGraphic   = "SourceGraphic"
	SourceAlpha     = "SourceAlpha"
	BackgroundImage = "BackgroundImage"
	BackgroundAlpha = "BackgroundAlpha"
	FillPaint       = "FillPaint"
	StrokePaint     = "StrokePaint"
)

// IsStandardInput reports whether name is one of the six reserved input
// names.
func IsStandardInput(name string) bool {
	switch name {
	case SourceGraphic, SourceAlpha, BackgroundImage, BackgroundAlpha, FillPaint, StrokePaint:
		return true
	default:
		return false
	}
}

// standard builds a standard input node and stores it in the arena with
// the filter region.
func (c *Context) standard(name string) (Ref, error) {
	switch name {
	case SourceGraphic:
		return c.sourceGraphic()
	case SourceAlpha:
		return c.alphaOf(c.sourceGraphic())
	case BackgroundImage:
		return c.backgroundImage()
	case BackgroundAlpha:
		return c.alphaOf(c.backgroundImage())
	case FillPaint, StrokePaint:
		var p *filter.Paint
		if c.source != nil {
			if name == FillPaint {
				p = c.source.FillPaint()
			} else {
				p = c.source.StrokePaint()
			}
		}
		if p == nil {
			return NoRef, ErrUnavailable
		}
		n, err := c.factory.Paint(p, nil)
		if err != nil {
			return NoRef, err
		}
		return c.add(n, c.filterRegion), nil
	default:
		return NoRef, ErrUnknownInput
	}
}

func (c *Context) sourceGraphic() (Ref, error) {
	if c.graphic.IsValid() {
		return c.graphic, nil
	}
	var pic *filter.Picture
	if c.source != nil {
		pic = c.source.SourceGraphic()
	}
	if pic == nil {
		return NoRef, ErrUnavailable
	}
	n, err := c.factory.Picture(pic, pic.Cull)
	if err != nil {
		return NoRef, err
	}
	c.graphic = c.add(n, c.filterRegion)
	return c.graphic, nil
}

// backgroundImage falls back to an opaque black fill when the backdrop is
// unavailable.
func (c *Context) backgroundImage() (Ref, error) {
	if c.background.IsValid() {
		return c.background, nil
	}
	var pic *filter.Picture
	if c.source != nil {
		pic = c.source.BackgroundImage()
	}

	var (
		n   filter.Node
		err error
	)
	if pic != nil {
		n, err = c.factory.Picture(pic, pic.Cull)
	} else {
		n, err = c.factory.Paint(&filter.Paint{
			Style: filter.StyleFillAndStroke,
			Color: filter.BackdropFallback,
		}, nil)
	}
	if err != nil {
		return NoRef, err
	}
	c.background = c.add(n, c.filterRegion)
	return c.background, nil
}

// alphaOf extracts the alpha channel of the node at ref.
func (c *Context) alphaOf(ref Ref, err error) (Ref, error) {
	if err != nil {
		return NoRef, err
	}
	n, err := c.factory.ColorFilter(&filter.MatrixFilter{Matrix: filter.AlphaMatrix()}, c.Node(ref), nil)
	if err != nil {
		return NoRef, err
	}
	return c.add(n, c.filterRegion), nil
}
