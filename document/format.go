package document

import "fmt"

// DefaultIndent is the indentation width used when no option overrides it.
const DefaultIndent = 2

const (
	minIndent = 2
	maxIndent = 9
)

// Format holds the formatting settings a Document is serialized with. It is fixed when
// the Document is constructed.
//
// Output is always block style. Sequence items are indented under their parent key by
// Indent.
type Format struct {
	Indent int
}

// Option defines a function type for configuring a Document's format.
type Option func(*Format)

// WithIndent sets the indentation width in spaces.
func WithIndent(spaces int) Option {
	return func(f *Format) {
		f.Indent = spaces
	}
}

func newFormat(opts []Option) (Format, error) {
	format := Format{Indent: DefaultIndent}

	for _, apply := range opts {
		apply(&format)
	}

	if format.Indent < minIndent || format.Indent > maxIndent {
		return Format{}, fmt.Errorf("%w: got %d", ErrInvalidIndent, format.Indent)
	}

	return format, nil
}
