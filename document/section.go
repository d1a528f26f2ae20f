package document

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/0xalexb/axiom/node"

	"gopkg.in/yaml.v3"
)

// Section is a view of a mapping inside a Document. It shares the Document's nodes and
// format, so changes made through a Section are visible in the Document and the other
// way round. A Section stays valid only while its mapping is part of the tree.
type Section struct {
	root   *yaml.Node
	format Format
}

// Node returns the node at path. The empty path returns the section's own mapping.
func (s *Section) Node(path string) (*yaml.Node, bool) {
	return resolve(s.root, path)
}

// Has reports whether path resolves to a node.
func (s *Section) Has(path string) bool {
	_, ok := s.Node(path)

	return ok
}

// String returns the text of the scalar at path.
func (s *Section) String(path string) (string, bool) {
	n, ok := s.Node(path)
	if !ok || !node.IsScalar(n) {
		return "", false
	}

	return n.Value, true
}

// Int parses the scalar at path as a signed decimal integer. It returns ErrNotFound
// when there is no scalar at path and ErrInvalidFormat when the scalar is not an integer.
func (s *Section) Int(path string) (int, error) {
	text, err := s.scalar(path)
	if err != nil {
		return 0, err
	}

	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q at %q is not an integer", ErrInvalidFormat, text, path)
	}

	return v, nil
}

// Bool parses the scalar at path as a boolean. Only the lower case literals true and
// false are accepted.
func (s *Section) Bool(path string) (bool, error) {
	text, err := s.scalar(path)
	if err != nil {
		return false, err
	}

	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q at %q is not a boolean", ErrInvalidFormat, text, path)
	}
}

// Float parses the scalar at path as a floating point number, including the YAML
// spellings of infinity and NaN.
func (s *Section) Float(path string) (float64, error) {
	text, err := s.scalar(path)
	if err != nil {
		return 0, err
	}

	switch strings.ToLower(text) {
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	case ".nan":
		return math.NaN(), nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q at %q is not a number", ErrInvalidFormat, text, path)
	}

	return v, nil
}

// StringList returns the items of the sequence at path. Items that are not scalars
// are skipped.
func (s *Section) StringList(path string) ([]string, bool) {
	n, ok := s.Node(path)
	if !ok || !node.IsSequence(n) {
		return nil, false
	}

	items := make([]string, 0, len(n.Content))

	for _, item := range n.Content {
		if node.IsScalar(item) {
			items = append(items, item.Value)
		}
	}

	return items, true
}

// Keys returns the direct keys of the section in document order.
func (s *Section) Keys() []string {
	return node.Keys(s.root)
}

// Sub returns a view of the mapping at path. The empty path is the section itself.
func (s *Section) Sub(path string) (*Section, bool) {
	n, ok := s.Node(path)
	if !ok || !node.IsMapping(n) {
		return nil, false
	}

	return &Section{root: n, format: s.format}, true
}

// Paths returns the dotted path of every entry below the section, depth first in
// document order. Mappings are listed before their children.
func (s *Section) Paths() []string {
	var paths []string

	var walk func(m *yaml.Node, prefix string)

	walk = func(m *yaml.Node, prefix string) {
		for _, entry := range node.Entries(m) {
			path := joinPath(prefix, entry.Key.Value)
			paths = append(paths, path)

			if node.IsMapping(entry.Value) {
				walk(entry.Value, path)
			}
		}
	}

	walk(s.root, "")

	return paths
}

// Comments returns the comments of the entry at path. Each slot is taken from the key
// node when set there and from the value node otherwise, which matches where they are
// printed.
func (s *Section) Comments(path string) (node.Comments, bool) {
	key, value, ok := s.entry(path)
	if !ok {
		return node.Comments{}, false
	}

	merged := *key
	node.Propagate(&merged, value, false)

	return node.CommentsOf(&merged), true
}

// KeyComments returns only the comments attached to the key node of the entry at path.
func (s *Section) KeyComments(path string) (node.Comments, bool) {
	key, _, ok := s.entry(path)
	if !ok {
		return node.Comments{}, false
	}

	return node.CommentsOf(key), true
}

// Bytes serializes the section on its own with the document's format.
func (s *Section) Bytes() ([]byte, error) {
	var buf bytes.Buffer

	err := encode(&buf, s.root, s.format)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (s *Section) scalar(path string) (string, error) {
	text, ok := s.String(path)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, path)
	}

	return text, nil
}

func (s *Section) entry(path string) (key, value *yaml.Node, ok bool) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, nil, false
	}

	parent, idx, ok := resolveEntry(s.root, segments)
	if !ok {
		return nil, nil, false
	}

	return parent.Content[idx], parent.Content[idx+1], true
}
