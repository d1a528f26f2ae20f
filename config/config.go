package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrNilTarget is returned by a Provider built around a nil target.
var ErrNilTarget = errors.New("nil configuration target")

// Parser defines an interface for decoding configuration data into a target structure.
//
// The path parameter selects the section to decode, using the dotted paths of the
// document package:
//   - "server" decodes config["server"]
//   - "server.tls" decodes config["server"]["tls"]
//   - "" (empty path) decodes the entire document
//
// See config/parser/yaml for an implementation on goccy/go-yaml paths.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, decodes, defaults and validates the section at path.
// The returned function fits fx.Provide when Parser and DataFetcher are in the graph.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		if target == nil {
			return nil, ErrNilTarget
		}

		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		if defaulter, ok := any(target).(Defaulter); ok && defaulter.SetDefaults() {
			slog.Info("struct defaults applied", slog.String("path", path))
		}

		if validator, ok := any(target).(Validator); ok {
			err = validator.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// Decode runs a Provider for a freshly allocated T.
func Decode[T any](parser Parser, fetcher DataFetcher, path string) (*T, error) {
	return Provider(new(T), path)(parser, fetcher)
}
