package document

import (
	"fmt"
	"strings"

	"github.com/0xalexb/axiom/node"

	"gopkg.in/yaml.v3"
)

// PathSeparator separates mapping keys in a path.
const PathSeparator = "."

// splitPath splits a mutation path into its segments. Every segment must be non-empty.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	segments := strings.Split(path, PathSeparator)
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, path)
		}
	}

	return segments, nil
}

// joinPath appends key to a dotted prefix.
func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + PathSeparator + key
}

// resolve walks path from root through mapping values only. The empty path resolves to
// root itself.
func resolve(root *yaml.Node, path string) (*yaml.Node, bool) {
	if path == "" {
		return root, root != nil
	}

	current := root

	for _, segment := range strings.Split(path, PathSeparator) {
		value, ok := node.Lookup(current, segment)
		if !ok {
			return nil, false
		}

		current = value
	}

	return current, true
}

// resolveEntry finds the mapping that holds the last segment of path and the index of
// its key. ok is false when any intermediate segment is absent or not a mapping, or the
// last key is absent.
func resolveEntry(root *yaml.Node, segments []string) (parent *yaml.Node, idx int, ok bool) {
	parent = root

	for _, segment := range segments[:len(segments)-1] {
		value, found := node.Lookup(parent, segment)
		if !found || !node.IsMapping(value) {
			return nil, -1, false
		}

		parent = value
	}

	idx = node.KeyIndex(parent, segments[len(segments)-1])
	if idx < 0 {
		return nil, -1, false
	}

	return parent, idx, true
}
