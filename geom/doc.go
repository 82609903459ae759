// Package geom provides the device-space geometry shared by the filter
// compiler and its backends: rectangles, 3D points for light sources,
// affine matrices and preserveAspectRatio fitting.
//
// # Coordinate System
//
// Uses the SVG user coordinate system:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// All values are float64. Backends narrow to float32 where their own
// parameter types require it.
package geom
