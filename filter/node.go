package filter

import "github.com/gogpu/svgfilter/geom"

// Node is an opaque, immutable handle to one operation in a filter graph.
// Nodes are created by a Factory and may be used as inputs of any number
// of later nodes.
type Node interface {
	// Op returns a short name of the operation, for diagnostics.
	Op() string
}

// Factory builds filter graph nodes.
//
// All geometry is in device space. A nil input means "the content being
// filtered". A nil crop leaves the output unbounded. Implementations
// return an error when the parameters cannot be represented.
type Factory interface {
	// Blend composites foreground over background with mode.
	Blend(mode BlendMode, background, foreground Node, crop *CropRect) (Node, error)

	// Arithmetic computes k1*fg*bg + k2*fg + k3*bg + k4 per channel.
	Arithmetic(k1, k2, k3, k4 float32, enforcePM bool, background, foreground Node, crop *CropRect) (Node, error)

	ColorFilter(cf ColorFilter, input Node, crop *CropRect) (Node, error)
	Merge(inputs []Node, crop *CropRect) (Node, error)
	Blur(sigmaX, sigmaY float32, input Node, crop *CropRect) (Node, error)
	Morphology(op MorphologyOp, radiusX, radiusY int, input Node, crop *CropRect) (Node, error)
	Offset(dx, dy float32, input Node, crop *CropRect) (Node, error)

	// DisplacementMap moves input pixels by the channels of displacement.
	DisplacementMap(xChannel, yChannel ColorChannel, scale float32, displacement, input Node, crop *CropRect) (Node, error)

	DistantLitDiffuse(direction geom.Point3, lightColor Color, surfaceScale, kd float32, input Node, crop *CropRect) (Node, error)
	PointLitDiffuse(location geom.Point3, lightColor Color, surfaceScale, kd float32, input Node, crop *CropRect) (Node, error)
	SpotLitDiffuse(location, target geom.Point3, specularExponent, cutoffAngle float32, lightColor Color, surfaceScale, kd float32, input Node, crop *CropRect) (Node, error)
	DistantLitSpecular(direction geom.Point3, lightColor Color, surfaceScale, ks, shininess float32, input Node, crop *CropRect) (Node, error)
	PointLitSpecular(location geom.Point3, lightColor Color, surfaceScale, ks, shininess float32, input Node, crop *CropRect) (Node, error)
	SpotLitSpecular(location, target geom.Point3, specularExponent, cutoffAngle float32, lightColor Color, surfaceScale, ks, shininess float32, input Node, crop *CropRect) (Node, error)

	MatrixConvolution(kernel Kernel, input Node, crop *CropRect) (Node, error)

	// Tile copies the src region of input repeatedly to fill dst.
	Tile(src, dst geom.Rect, input Node) (Node, error)

	// Image draws the src region of img into dst.
	Image(img *Image, src, dst geom.Rect, quality FilterQuality) (Node, error)

	// Picture replays pic clipped to cull.
	Picture(pic *Picture, cull geom.Rect) (Node, error)

	// Paint fills the crop rectangle with p.
	Paint(p *Paint, crop *CropRect) (Node, error)
}
