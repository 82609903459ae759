package asset

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register decoders
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/svgfilter/filter"
	"github.com/gogpu/svgfilter/svgdoc"
)

// DefaultMaxDimension bounds the larger side of a decoded raster.
const DefaultMaxDimension = 4096

var (
	// ErrEmptyHref is returned for an empty reference.
	ErrEmptyHref = errors.New("asset: empty href")

	// ErrLocalReference is returned for "#id" references, which name
	// elements of the referencing document rather than external assets.
	ErrLocalReference = errors.New("asset: local element references are not loadable")

	// ErrNoFS is returned for a path reference when the loader has no
	// file system.
	ErrNoFS = errors.New("asset: no file system configured")

	// ErrMalformedDataURI is returned for a data: URI without a comma.
	ErrMalformedDataURI = errors.New("asset: malformed data URI")

	// ErrUnsupportedType is returned for content that is neither a known
	// raster format nor SVG.
	ErrUnsupportedType = errors.New("asset: unsupported content type")
)

// Option configures a Loader.
type Option func(*Loader)

// WithFS sets the file system that path references are read from.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithMaxDimension sets the largest side a raster is kept at. Larger
// images are downscaled, preserving their aspect ratio. Zero or negative
// disables downscaling.
func WithMaxDimension(n int) Option {
	return func(l *Loader) {
		l.maxDim = n
	}
}

// WithCacheCapacity sets the number of assets kept per cache shard.
func WithCacheCapacity(n int) Option {
	return func(l *Loader) {
		l.cache = newCache[*filter.Asset](n)
	}
}

// WithLogger sets the logger for decode diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// Loader loads and caches assets. It is safe for concurrent use.
type Loader struct {
	fsys   fs.FS
	maxDim int
	cache  *cache[*filter.Asset]
	log    *slog.Logger
}

// NewLoader creates a loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		maxDim: DefaultMaxDimension,
		cache:  newCache[*filter.Asset](DefaultCacheCapacity),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load implements filter.AssetLoader. Failures are not cached.
func (l *Loader) Load(href string) (*filter.Asset, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return nil, ErrEmptyHref
	}
	if strings.HasPrefix(href, "#") {
		return nil, ErrLocalReference
	}
	if a, ok := l.cache.get(href); ok {
		return a, nil
	}

	data, mediaType, err := l.read(href)
	if err != nil {
		return nil, err
	}
	a, err := l.decode(data, mediaType)
	if err != nil {
		return nil, fmt.Errorf("asset: %s: %w", shorten(href), err)
	}
	l.cache.set(href, a)
	return a, nil
}

// Stats returns the cache counters.
func (l *Loader) Stats() CacheStats {
	return l.cache.stats()
}

// Purge drops every cached asset.
func (l *Loader) Purge() {
	l.cache.clear()
}

func (l *Loader) read(href string) ([]byte, string, error) {
	if strings.HasPrefix(href, "data:") {
		return parseDataURI(href)
	}
	if l.fsys == nil {
		return nil, "", ErrNoFS
	}
	name := strings.TrimPrefix(path.Clean("/"+href), "/")
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, "", fmt.Errorf("asset: %w", err)
	}
	return data, mime.TypeByExtension(path.Ext(name)), nil
}

// parseDataURI decodes "data:[<mediatype>][;base64],<data>".
func parseDataURI(uri string) ([]byte, string, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !ok {
		return nil, "", ErrMalformedDataURI
	}

	isBase64 := false
	if m, found := strings.CutSuffix(meta, ";base64"); found {
		meta, isBase64 = m, true
	}
	mediaType, _, err := mime.ParseMediaType(meta)
	if err != nil {
		mediaType = ""
	}

	if isBase64 {
		// Data URIs in markup often carry line breaks.
		payload = strings.Join(strings.Fields(payload), "")
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		}
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrMalformedDataURI, err)
		}
		return data, mediaType, nil
	}

	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrMalformedDataURI, err)
	}
	return []byte(s), mediaType, nil
}

func (l *Loader) decode(data []byte, mediaType string) (*filter.Asset, error) {
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = http.DetectContentType(data)
	}
	if isSVG(mediaType, data) {
		doc, err := svgdoc.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return &filter.Asset{Fragment: doc}, nil
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mediaType)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return &filter.Asset{Image: filter.NewImage(l.fit(img))}, nil
}

// fit downscales img so that neither side exceeds the loader maximum.
func (l *Loader) fit(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if l.maxDim <= 0 || (w <= l.maxDim && h <= l.maxDim) {
		return img
	}

	scale := float64(l.maxDim) / float64(max(w, h))
	dw := max(1, int(float64(w)*scale+0.5))
	dh := max(1, int(float64(h)*scale+0.5))
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	l.log.Debug("asset: raster downscaled", "from", b.Size(), "to", dst.Bounds().Size())
	return dst
}

func isSVG(mediaType string, data []byte) bool {
	if mediaType == "image/svg+xml" {
		return true
	}
	if !strings.HasPrefix(mediaType, "text/") {
		return false
	}
	head := data[:min(len(data), 512)]
	return bytes.Contains(head, []byte("<svg"))
}

// shorten keeps data URIs readable in error messages.
func shorten(href string) string {
	if len(href) > 48 {
		return href[:45] + "..."
	}
	return href
}
