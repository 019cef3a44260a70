// FILE: lixenwraith/dirconfig/errors.go
package dirconfig

import "errors"

var (
	// ErrInvalidKey is returned when a key is empty or not a string.
	ErrInvalidKey = errors.New("invalid configuration key")

	// ErrDirNotFound is returned by Load when the base directory does not exist.
	ErrDirNotFound = errors.New("configuration directory not found")

	// ErrNotFound is returned by typed accessors when a path holds no value.
	ErrNotFound = errors.New("configuration path not found")

	// ErrUnknownFormat is returned when no loader or encoder exists for a format.
	ErrUnknownFormat = errors.New("unknown configuration format")

	// ErrNotMapping is returned when a path that must refer to a section holds a scalar or sequence.
	ErrNotMapping = errors.New("configuration path does not refer to a mapping")
)
