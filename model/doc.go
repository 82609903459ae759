// Package model holds the parsed form of SVG filter definitions and the
// elements that reference them.
//
// Everything here is plain data. Values are created once by a parser (see
// package svgdoc) or by hand, and are only read during compilation.
//
// Fields whose SVG default is not the Go zero value are documented on the
// field, and the New* constructors return values with those defaults set.
package model
