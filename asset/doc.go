// Package asset resolves feImage references into images and fragments.
//
// A Loader implements filter.AssetLoader. It understands data: URIs
// (base64 or percent-encoded) and paths into an fs.FS. Raster formats are
// decoded with EXIF orientation applied; PNG, JPEG, GIF, BMP, TIFF and
// WebP are supported. SVG documents become fragments that the compiler
// snapshots through its FragmentRenderer.
//
// Loaded assets are kept in a sharded LRU cache keyed by href, so a filter
// compiled for many elements decodes each image once.
//
//	l := asset.NewLoader(asset.WithFS(os.DirFS("testdata")))
//	paint, ok := svgfilter.Compile(el, bounds, src, l)
package asset
