// Package filter defines the vocabulary shared between the filter compiler
// and a raster backend.
//
// The compiler never touches pixels. It asks a Factory to build one Node per
// filter primitive, wiring previously built nodes as inputs, and finally
// wraps the last node in a Paint. What a Node is, and how it is evaluated,
// is entirely up to the backend.
//
// # Backend Contract
//
// A Factory exposes one constructor per primitive kind (blend, color filter,
// merge, blur, morphology, offset, displacement, six lighting variants,
// convolution, tile, image, picture, paint). Every constructor receives
// parameters that are already resolved into device space and an optional
// CropRect. Returning an error means "this primitive cannot be built"; the
// compiler treats it as a local failure.
//
// # Content Collaborators
//
// ContentSource supplies the element's own rendering, the backdrop and its
// fill/stroke paints. AssetLoader resolves image references. A
// FragmentRenderer snapshots nested graphics fragments.
//
// # Registration
//
// Factories are registered by name following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/svgfilter/filter/record"
//
//	f, err := filter.New("record")
package filter
