package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrInvalidPath is returned for a path with an empty segment.
var ErrInvalidPath = errors.New("invalid path")

// Parser implements config.Parser interface for YAML data.
// It navigates to the requested section with goccy/go-yaml paths before decoding.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the section of data at the dotted path into target.
// Empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	yamlPath, err := buildPath(path)
	if err != nil {
		return err
	}

	err = yamlPath.Read(bytes.NewReader(data), target)
	if err != nil {
		if isKeyNotFoundError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// buildPath converts a dotted path to a goccy/go-yaml path.
// Examples:
//   - "key" -> "$.key"
//   - "server.tls" -> "$.server.tls"
func buildPath(path string) (*yaml.Path, error) {
	builder := (&yaml.PathBuilder{}).Root()

	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, path)
		}

		builder = builder.Child(segment)
	}

	return builder.Build(), nil
}

// isKeyNotFoundError checks if the error indicates a key was not found.
func isKeyNotFoundError(err error) bool {
	return yaml.IsNotFoundNodeError(err)
}
