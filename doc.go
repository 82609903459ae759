// Package svgfilter compiles SVG filter effects into backend filter graphs.
//
// # Overview
//
// An element that carries a filter property references a <filter>
// definition, which may inherit attributes and primitives from other
// definitions through href. svgfilter links that chain, resolves the
// filter region and every primitive's region in device space, and builds
// one backend node per primitive through a filter.Factory. The result is a
// fill-and-stroke paint whose image filter is the last node.
//
// svgfilter never touches pixels. Rasterization is the backend's job.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/svgfilter"
//	    "github.com/gogpu/svgfilter/svgdoc"
//	)
//
//	doc, err := svgdoc.Parse(r)
//	if err != nil {
//	    return err
//	}
//	el, _ := doc.Element("shadowed")
//	paint, ok := svgfilter.Compile(el, bounds, source, assets)
//	switch {
//	case !ok:
//	    // broken filter: render the element without one
//	case paint == nil:
//	    // filter="none"
//	default:
//	    // draw with paint.ImageFilter
//	}
//
// # Backends
//
// The factory is chosen with WithFactory. Without it, svgfilter asks the
// filter registry for its default, which is the recording backend in
// filter/record unless another backend has been registered.
//
// # Architecture
//
// The module is organized into:
//   - Public vocabulary: geom (rectangles, matrices), filter (backend
//     contract), model (filter definitions and primitives)
//   - Internal stages: link (href chains), units (coordinate resolution),
//     resolve (standard inputs and named results), compile (the pass)
//   - Collaborators: asset (image loading), svgdoc (document parsing)
//
// # Coordinate System
//
// All regions are in device space with the origin at the top-left, x
// increasing right and y increasing down.
package svgfilter
