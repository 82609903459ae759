package filter

import "errors"

var (
	// ErrNilInput is returned by factories when a required input is nil.
	ErrNilInput = errors.New("filter: nil input")

	// ErrInvalidParams is returned for parameters a backend cannot represent.
	ErrInvalidParams = errors.New("filter: invalid parameters")

	// ErrNoFragment is returned when snapshotting a nil fragment.
	ErrNoFragment = errors.New("filter: nil fragment")

	// ErrNoFactory is returned by Default when no factory is registered.
	ErrNoFactory = errors.New("filter: no factory registered (forgotten import?)")
)
