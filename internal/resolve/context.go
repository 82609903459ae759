// Package resolve tracks the nodes produced while compiling one filter:
// the named results, the region of every node and the most recent result.
//
// Nodes live in an append-only arena and are addressed by Ref. A name maps
// to a Ref, and every arena entry carries its region, so a named node
// always has a region.
package resolve

import (
	"errors"
	"strings"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/geom"
)

// Ref is a reference to a node in a Context's arena.
type Ref uint32

// NoRef marks the absence of a node.
const NoRef Ref = ^Ref(0)

// IsValid returns true if the reference is not NoRef.
func (r Ref) IsValid() bool {
	return r != NoRef
}

var (
	// ErrUnknownInput is returned for a name that is neither a result nor
	// a standard input.
	ErrUnknownInput = errors.New("resolve: unknown input")

	// ErrNoResult is returned for an implicit input before any primitive
	// has produced a node.
	ErrNoResult = errors.New("resolve: no previous result")

	// ErrUnavailable is returned when the content source cannot supply a
	// standard input that has no fallback.
	ErrUnavailable = errors.New("resolve: source content unavailable")
)

type entry struct {
	node   filter.Node
	region geom.Rect
}

// Context is the resolution state of one compilation. It is not safe for
// concurrent use and must not be shared between compilations.
type Context struct {
	factory      filter.Factory
	source       filter.ContentSource
	filterRegion geom.Rect

	entries []entry
	names   map[string]Ref
	last    Ref

	// Unshadowed source and background nodes, shared by their alpha
	// variants even if a result later reuses the reserved name.
	graphic    Ref
	background Ref
}

// NewContext creates an empty context. Standard inputs are built with
// factory from source on first use and get filterRegion as their region.
// A nil source makes every standard input unavailable.
func NewContext(factory filter.Factory, source filter.ContentSource, filterRegion geom.Rect) *Context {
	return &Context{
		factory:      factory,
		source:       source,
		filterRegion: filterRegion,
		entries:      make([]entry, 0, 16),
		names:        make(map[string]Ref),
		last:         NoRef,
		graphic:      NoRef,
		background:   NoRef,
	}
}

// FilterRegion returns the region of the filter being compiled.
func (c *Context) FilterRegion() geom.Rect { return c.filterRegion }

// Factory returns the factory nodes are built with.
func (c *Context) Factory() filter.Factory { return c.factory }

func (c *Context) add(n filter.Node, region geom.Rect) Ref {
	c.entries = append(c.entries, entry{node: n, region: region})
	// #nosec G115 -- arena size is bounded by the primitive count, well under uint32 max
	return Ref(uint32(len(c.entries) - 1))
}

// Produce records the output of a primitive: it stores the node with its
// region, names it if result is not empty and makes it the last result.
func (c *Context) Produce(result string, n filter.Node, region geom.Rect) Ref {
	ref := c.add(n, region)
	if name := strings.TrimSpace(result); name != "" {
		c.names[name] = ref
	}
	c.last = ref
	return ref
}

// Last returns the most recently produced node, or NoRef.
func (c *Context) Last() Ref { return c.last }

// Len returns the number of nodes in the arena.
func (c *Context) Len() int { return len(c.entries) }

// Node returns the node at ref, or nil for an invalid ref.
func (c *Context) Node(ref Ref) filter.Node {
	if int(ref) >= len(c.entries) {
		return nil
	}
	return c.entries[ref].node
}

// Region returns the region stored for ref.
func (c *Context) Region(ref Ref) (geom.Rect, bool) {
	if int(ref) >= len(c.entries) {
		return geom.Rect{}, false
	}
	return c.entries[ref].region, true
}

// Lookup returns the node stored under name.
func (c *Context) Lookup(name string) (Ref, bool) {
	ref, ok := c.names[name]
	return ref, ok
}

// Input resolves an input reference.
//
// An empty name is the last result, except for the first primitive, which
// reads SourceGraphic. Named results shadow standard inputs. Standard
// inputs are built on first use and cached under their own name.
func (c *Context) Input(name string, first bool) (Ref, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		if !first {
			if !c.last.IsValid() {
				return NoRef, ErrNoResult
			}
			return c.last, nil
		}
		name = SourceGraphic
	}

	if ref, ok := c.names[name]; ok {
		return ref, nil
	}
	if !IsStandardInput(name) {
		return NoRef, ErrUnknownInput
	}

	ref, err := c.standard(name)
	if err != nil {
		return NoRef, err
	}
	c.names[name] = ref
	return ref, nil
}
