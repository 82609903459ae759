// Package link follows filter inheritance chains.
//
// A <filter> may reference another filter through href. Each inheritable
// attribute is taken from the first filter in the chain that specifies
// it, independently of the other attributes. The primitive list is taken
// whole from the first filter that has any primitives.
package link

import (
	"errors"

	"github.com/gogpu/svgfilter/model"
)

var (
	// ErrUnresolved is returned when the element's filter reference does
	// not name a known filter.
	ErrUnresolved = errors.New("link: filter reference not found")

	// ErrEmptyChain is returned when the chain holds no definitions.
	ErrEmptyChain = errors.New("link: empty filter chain")

	// ErrNoPrimitives is returned when no filter in the chain has
	// primitives.
	ErrNoPrimitives = errors.New("link: no filter primitives in chain")
)

// Default region and units of a filter.
var (
	DefaultX      = model.Percent(-10)
	DefaultY      = model.Percent(-10)
	DefaultWidth  = model.Percent(120)
	DefaultHeight = model.Percent(120)
)

const (
	DefaultFilterUnits    = model.ObjectBoundingBox
	DefaultPrimitiveUnits = model.UserSpaceOnUse
)

// Chain is a linked filter with its inherited attributes resolved.
type Chain struct {
	// Definitions lists the filters in href order, starting with the one
	// the element references.
	Definitions []*model.FilterDefinition

	X, Y, Width, Height model.Unit

	FilterUnits    model.CoordinateUnits
	PrimitiveUnits model.CoordinateUnits

	Primitives []model.Primitive

	// Cyclic is set when the walk stopped at a reference cycle.
	Cyclic bool
}

// Walk returns the filters reachable from the element's filter property,
// in href order. The walk stops at the first reference that is missing or
// that points back into the chain; the latter sets cyclic.
func Walk(el model.Element) (defs []*model.FilterDefinition, cyclic bool, err error) {
	if el.Defs == nil {
		return nil, false, ErrUnresolved
	}
	id, ok := model.ParseRef(el.Filter)
	if !ok {
		return nil, false, ErrUnresolved
	}
	def, ok := el.Defs.Filter(id)
	if !ok {
		return nil, false, ErrUnresolved
	}

	visited := map[string]struct{}{id: {}}
	for def != nil {
		defs = append(defs, def)

		next, ok := model.ParseRef(def.Href)
		if !ok {
			break
		}
		if _, seen := visited[next]; seen {
			cyclic = true
			break
		}
		visited[next] = struct{}{}

		def, ok = el.Defs.Filter(next)
		if !ok {
			break
		}
	}
	return defs, cyclic, nil
}

// Resolve walks the element's filter chain and merges its attributes.
func Resolve(el model.Element) (*Chain, error) {
	defs, cyclic, err := Walk(el)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, ErrEmptyChain
	}

	c := &Chain{Definitions: defs, Cyclic: cyclic}
	var (
		x, y, w, h     *model.Unit
		filterUnits    *model.CoordinateUnits
		primitiveUnits *model.CoordinateUnits
	)
	for _, d := range defs {
		x = first(x, d.X)
		y = first(y, d.Y)
		w = first(w, d.Width)
		h = first(h, d.Height)
		filterUnits = first(filterUnits, d.FilterUnits)
		primitiveUnits = first(primitiveUnits, d.PrimitiveUnits)
		if c.Primitives == nil && len(d.Primitives) > 0 {
			c.Primitives = d.Primitives
		}
	}
	if c.Primitives == nil {
		return nil, ErrNoPrimitives
	}

	c.X = valueOr(x, DefaultX)
	c.Y = valueOr(y, DefaultY)
	c.Width = valueOr(w, DefaultWidth)
	c.Height = valueOr(h, DefaultHeight)
	c.FilterUnits = valueOr(filterUnits, DefaultFilterUnits)
	c.PrimitiveUnits = valueOr(primitiveUnits, DefaultPrimitiveUnits)
	return c, nil
}

func first[T any](have, candidate *T) *T {
	if have != nil {
		return have
	}
	return candidate
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
