package compile

import "errors"

// Reasons a primitive contributes no node. They are wrapped with the
// primitive's element name.
var (
	ErrNoRegion         = errors.New("compile: empty primitive region")
	ErrMissingInput     = errors.New("compile: input not resolved")
	ErrInvalidParams    = errors.New("compile: invalid parameters")
	ErrNoLight          = errors.New("compile: no light source")
	ErrUnsupportedColor = errors.New("compile: unsupported color")
	ErrNoAsset          = errors.New("compile: image not available")
	ErrUnknownPrimitive = errors.New("compile: unknown primitive")
)
