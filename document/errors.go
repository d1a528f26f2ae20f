package document

import (
	"errors"

	"github.com/0xalexb/axiom/node"
)

// ErrInvalidDocument is returned when input cannot be parsed into a document with a
// mapping at its root.
var ErrInvalidDocument = errors.New("invalid document")

// ErrNotFound is returned by typed getters when the path is absent or does not hold a scalar.
var ErrNotFound = errors.New("path not found")

// ErrInvalidFormat is returned by typed getters when the scalar at path cannot be read
// as the requested type.
var ErrInvalidFormat = errors.New("invalid format")

// ErrStructuralConflict is returned by Set when an intermediate path segment exists but
// is not a mapping.
var ErrStructuralConflict = errors.New("structural conflict")

// ErrInvalidPath is returned for an empty path or a path with an empty segment.
var ErrInvalidPath = errors.New("invalid path")

// ErrInvalidIndent is returned when the indentation option is outside 2..9.
var ErrInvalidIndent = errors.New("indent must be between 2 and 9")

// ErrUnsupportedValue is returned when a value handed to Set has no node representation.
var ErrUnsupportedValue = node.ErrUnsupportedValue
