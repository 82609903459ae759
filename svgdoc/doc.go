// Package svgdoc reads filter definitions and filtered elements from SVG
// markup.
//
// Parse understands the <filter> element with its href inheritance and
// units attributes, the sixteen fe* primitives with their child elements
// (transfer functions, merge nodes, light sources), and presentation
// properties given either as attributes or in a style attribute. Every
// element that carries a filter property becomes a model.Element whose
// Defs is the document itself.
//
// Documents in legacy encodings are decoded through their XML declaration
// charset.
//
// A Document also implements filter.Fragment, so an SVG file referenced
// by feImage can stand in as a nested fragment.
package svgdoc
