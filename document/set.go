package document

import (
	"fmt"
	"strings"

	"github.com/0xalexb/axiom/node"

	"gopkg.in/yaml.v3"
)

// Set stores value at path, creating missing intermediate mappings. A nil value deletes
// the entry, see Delete.
//
// Strings are coerced to integers, decimals and booleans when they read as such, a
// []string becomes a sequence of quoted strings, a *yaml.Node, *Document or *Section is
// copied, and any other value is represented as-is.
//
// When the entry exists its value is replaced in place and keeps the comments of the
// previous value; a new entry is appended to the end of its mapping. If an intermediate
// segment holds something other than a mapping, Set returns ErrStructuralConflict and
// leaves the tree unchanged.
func (s *Section) Set(path string, value any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	v, err := valueNode(value)
	if err != nil {
		return fmt.Errorf("setting %q: %w", path, err)
	}

	if v == nil {
		s.remove(segments)

		return nil
	}

	parent, missing, err := walkParents(s.root, segments)
	if err != nil {
		return err
	}

	for _, segment := range missing {
		child := node.NewMapping()
		node.Append(parent, node.NewKey(segment), child)
		parent = child
	}

	last := segments[len(segments)-1]

	idx := node.KeyIndex(parent, last)
	if idx < 0 {
		node.Append(parent, node.NewKey(last), v)

		return nil
	}

	node.Propagate(v, parent.Content[idx+1], true)
	parent.Content[idx+1] = v

	return nil
}

// Delete removes the entry at path. It is a no-op when the entry does not exist.
func (s *Section) Delete(path string) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	s.remove(segments)

	return nil
}

// SetComments replaces the comments of the entry at path. Block and end comments are
// attached to the key; the inline comment follows a scalar value on its line, or the key
// when the value is a collection.
func (s *Section) SetComments(path string, comments node.Comments) error {
	key, value, ok := s.entry(path)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, path)
	}

	keyComments := node.Comments{Block: comments.Block, End: comments.End}
	valueComments := node.Comments{}

	if node.IsScalar(value) {
		valueComments.Inline = comments.Inline
	} else {
		keyComments.Inline = comments.Inline
	}

	node.SetComments(key, keyComments)
	node.SetComments(value, valueComments)

	return nil
}

func (s *Section) remove(segments []string) {
	parent, idx, ok := resolveEntry(s.root, segments)
	if ok {
		node.Remove(parent, idx)
	}
}

// walkParents descends through the existing intermediate mappings of segments. It returns
// the deepest existing mapping and the segments that still have to be created. Nothing
// is modified.
func walkParents(root *yaml.Node, segments []string) (*yaml.Node, []string, error) {
	parents := segments[:len(segments)-1]
	current := root

	for i, segment := range parents {
		value, ok := node.Lookup(current, segment)
		if !ok {
			return current, parents[i:], nil
		}

		if !node.IsMapping(value) {
			return nil, nil, fmt.Errorf("%w: %q is a %s, not a mapping",
				ErrStructuralConflict, strings.Join(segments[:i+1], PathSeparator), node.KindName(value))
		}

		current = value
	}

	return current, nil, nil
}

func valueNode(value any) (*yaml.Node, error) {
	switch v := value.(type) {
	case *Document:
		if v == nil {
			return nil, nil
		}

		return node.Clone(v.root), nil
	case *Section:
		if v == nil {
			return nil, nil
		}

		return node.Clone(v.root), nil
	}

	return node.FromValue(value)
}
