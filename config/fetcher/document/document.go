package document

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilSource is returned when the fetcher is built without a source.
var ErrNilSource = errors.New("nil document source")

// Source is anything that serializes to document text, such as *document.Document and
// *document.Section.
type Source interface {
	Bytes() ([]byte, error)
}

// Fetcher implements config.DataFetcher for a Source.
type Fetcher struct {
	source Source
}

// NewFetcher returns a constructor for a Fetcher reading from source.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
func NewFetcher(source Source) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if isNil(source) {
			return nil, ErrNilSource
		}

		return &Fetcher{source: source}, nil
	}
}

// Fetch returns the current serialized form of the source.
func (f *Fetcher) Fetch() ([]byte, error) {
	data, err := f.source.Bytes()
	if err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}

	return data, nil
}

func isNil(source Source) bool {
	if source == nil {
		return true
	}

	v := reflect.ValueOf(source)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
