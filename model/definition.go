package model

import (
	"strings"

	"github.com/gogpu/svgfilter/filter"
)

// FilterDefinition is a <filter> element.
type FilterDefinition struct {
	ID string

	// Href references another filter to inherit from, as "#id" or
	// "url(#id)". Empty means no inheritance.
	Href string

	// Region attributes. Nil means unspecified.
	X, Y, Width, Height *Unit

	// Nil means unspecified.
	FilterUnits    *CoordinateUnits
	PrimitiveUnits *CoordinateUnits

	Primitives []Primitive
}

// Resolver looks up filter definitions by id.
type Resolver interface {
	Filter(id string) (*FilterDefinition, bool)
}

// Defs is a map-backed Resolver.
type Defs map[string]*FilterDefinition

// Filter implements Resolver.
func (d Defs) Filter(id string) (*FilterDefinition, bool) {
	f, ok := d[id]
	return f, ok && f != nil
}

// Add stores f under its ID and returns d.
func (d Defs) Add(f *FilterDefinition) Defs {
	d[f.ID] = f
	return d
}

// Element is a visual element with a filter property.
type Element struct {
	ID string

	// Filter is the filter property value: "url(#id)", "#id", "none" or
	// empty.
	Filter string

	// Color is the current color, used for currentColor.
	Color filter.Color

	Defs Resolver
}

// IsNone reports whether a filter property disables filtering: empty or
// the keyword none in any case.
func IsNone(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "none")
}

// ParseRef extracts the id from a local reference: "#id", "url(#id)",
// url('#id') or url("#id"). It reports false for anything else.
func ParseRef(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if inner, ok := strings.CutPrefix(s, "url("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return "", false
		}
		inner = strings.TrimSpace(inner)
		if len(inner) >= 2 && (inner[0] == '\'' || inner[0] == '"') && inner[len(inner)-1] == inner[0] {
			inner = inner[1 : len(inner)-1]
		}
		s = strings.TrimSpace(inner)
	}
	id, ok := strings.CutPrefix(s, "#")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
