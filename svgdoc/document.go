package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
	"github.com/gogpu/svgfilter/internal/units"
	"github.com/gogpu/svgfilter/model"
)

// ErrNotSVG is returned when the root element is not <svg>.
var ErrNotSVG = errors.New("svgdoc: root element is not svg")

// Document is a parsed SVG document.
type Document struct {
	// Width and Height are the root element's size attributes, nil when
	// absent.
	Width, Height *model.Unit

	// ViewBox is the root viewBox, empty when absent.
	ViewBox geom.Rect

	filters  map[string]*model.FilterDefinition
	order    []*model.FilterDefinition
	elements []model.Element
}

// Filter implements model.Resolver.
func (d *Document) Filter(id string) (*model.FilterDefinition, bool) {
	f, ok := d.filters[id]
	return f, ok
}

// Filters returns the filter definitions in document order.
func (d *Document) Filters() []*model.FilterDefinition {
	return d.order
}

// Elements returns the elements that carry a filter property, in
// document order.
func (d *Document) Elements() []model.Element {
	return d.elements
}

// Element returns the filtered element with the given id.
func (d *Document) Element(id string) (model.Element, bool) {
	for _, el := range d.elements {
		if el.ID == id && id != "" {
			return el, true
		}
	}
	return model.Element{}, false
}

// Size implements filter.Fragment. Absolute width and height win over the
// viewBox; a document with neither has no size.
func (d *Document) Size() (w, h float64) {
	w, h = d.ViewBox.Width(), d.ViewBox.Height()
	if d.Width != nil && !d.Width.IsPercent() {
		w = units.Length(*d.Width)
	}
	if d.Height != nil && !d.Height.IsPercent() {
		h = units.Length(*d.Height)
	}
	return w, h
}

var _ filter.Fragment = (*Document)(nil)

// parser carries the state of one token pass.
type parser struct {
	doc   *Document
	depth int

	// colors is the inherited color property per open element.
	colors []filter.Color

	filter      *model.FilterDefinition
	filterDepth int
	prim        model.Primitive
	primDepth   int
}

// Parse reads an SVG document.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader
	dec.Entity = xml.HTMLEntity

	p := &parser{
		doc:    &Document{filters: make(map[string]*model.FilterDefinition)},
		colors: []filter.Color{filter.Black},
	}
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svgdoc: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.start(t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			p.end()
		}
	}
	return p.doc, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("svgdoc: charset %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

func (p *parser) start(t xml.StartElement) error {
	p.depth++
	a := newAttrs(t.Attr)
	name := t.Name.Local

	color := p.colors[len(p.colors)-1]
	if c, ok := ParseColor(a["color"]); ok {
		if rgb, ok := c.Resolve(color, color); ok {
			color = rgb
		}
	}
	p.colors = append(p.colors, color)

	if p.depth == 1 {
		if name != "svg" {
			return ErrNotSVG
		}
		p.doc.Width, p.doc.Height = a.unit("width"), a.unit("height")
		if vb := a.numbers("viewBox"); len(vb) == 4 && vb[2] > 0 && vb[3] > 0 {
			p.doc.ViewBox = geom.XYWH(vb[0], vb[1], vb[2], vb[3])
		}
	}

	switch {
	case p.prim != nil:
		if p.depth == p.primDepth+1 {
			addChild(p.prim, name, a)
		}
	case p.filter != nil:
		if kind, ok := model.KindByElement(name); ok && p.depth == p.filterDepth+1 {
			p.prim = newPrimitive(kind, a)
			p.primDepth = p.depth
			p.filter.Primitives = append(p.filter.Primitives, p.prim)
		}
	case name == "filter":
		p.filter = filterDefinition(a)
		p.filterDepth = p.depth
		p.doc.order = append(p.doc.order, p.filter)
		if id := p.filter.ID; id != "" {
			if _, dup := p.doc.filters[id]; !dup {
				p.doc.filters[id] = p.filter
			}
		}
	default:
		if f := a.str("filter"); f != "" {
			p.doc.elements = append(p.doc.elements, model.Element{
				ID:     a.str("id"),
				Filter: f,
				Color:  color,
				Defs:   p.doc,
			})
		}
	}
	return nil
}

func (p *parser) end() {
	switch p.depth {
	case p.primDepth:
		p.prim, p.primDepth = nil, 0
	case p.filterDepth:
		p.filter, p.filterDepth = nil, 0
	}
	p.colors = p.colors[:len(p.colors)-1]
	p.depth--
}

func filterDefinition(a attrs) *model.FilterDefinition {
	f := &model.FilterDefinition{
		ID:     a.str("id"),
		Href:   a.str("href"),
		X:      a.unit("x"),
		Y:      a.unit("y"),
		Width:  a.unit("width"),
		Height: a.unit("height"),
	}
	if u, ok := model.ParseCoordinateUnits(a.str("filterUnits")); ok {
		f.FilterUnits = &u
	}
	if u, ok := model.ParseCoordinateUnits(a.str("primitiveUnits")); ok {
		f.PrimitiveUnits = &u
	}
	return f
}
