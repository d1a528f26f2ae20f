package node

import (
	"gopkg.in/yaml.v3"
)

// YAML core schema tags used when nodes are built programmatically.
const (
	StrTag   = "!!str"
	IntTag   = "!!int"
	FloatTag = "!!float"
	BoolTag  = "!!bool"
	MapTag   = "!!map"
	SeqTag   = "!!seq"
)

// Entry is a key/value pair of a mapping node.
type Entry struct {
	Key   *yaml.Node
	Value *yaml.Node
}

// IsMapping reports whether n is a mapping node.
func IsMapping(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.MappingNode
}

// IsSequence reports whether n is a sequence node.
func IsSequence(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.SequenceNode
}

// IsScalar reports whether n is a scalar node.
func IsScalar(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.ScalarNode
}

// KindName returns a human readable name of the node kind, used in error messages.
func KindName(n *yaml.Node) string {
	if n == nil {
		return "nothing"
	}

	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// NewMapping returns an empty block mapping.
func NewMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: MapTag}
}

// NewString returns a plain string scalar. The emitter quotes it when the plain form
// would be read back as another type.
func NewString(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: StrTag, Value: value}
}

// NewKey returns a scalar suitable as a mapping key.
func NewKey(key string) *yaml.Node {
	return NewString(key)
}

// NewStringSequence returns a block sequence whose items are double-quoted strings.
// List items are never coerced to numbers or booleans.
func NewStringSequence(values []string) *yaml.Node {
	seq := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Tag:     SeqTag,
		Content: make([]*yaml.Node, 0, len(values)),
	}

	for _, value := range values {
		item := NewString(value)
		item.Style = yaml.DoubleQuotedStyle
		seq.Content = append(seq.Content, item)
	}

	return seq
}

// KeyIndex returns the index in m.Content of the first scalar key equal to key,
// or -1 when m is not a mapping or has no such key. The value sits at index+1.
func KeyIndex(m *yaml.Node, key string) int {
	if !IsMapping(m) {
		return -1
	}

	for i := 0; i+1 < len(m.Content); i += 2 {
		k := m.Content[i]
		if k.Kind == yaml.ScalarNode && k.Value == key {
			return i
		}
	}

	return -1
}

// Lookup returns the value of the first entry of m whose key equals key.
func Lookup(m *yaml.Node, key string) (*yaml.Node, bool) {
	idx := KeyIndex(m, key)
	if idx < 0 {
		return nil, false
	}

	return m.Content[idx+1], true
}

// Keys returns the scalar keys of m in document order. Non-scalar keys are skipped.
func Keys(m *yaml.Node) []string {
	if !IsMapping(m) {
		return nil
	}

	keys := make([]string, 0, len(m.Content)/2)

	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Kind == yaml.ScalarNode {
			keys = append(keys, m.Content[i].Value)
		}
	}

	return keys
}

// Entries returns the entries of m that are reachable by key lookup: scalar keys only,
// first occurrence of each key. The returned slice is a snapshot, mutating m while
// ranging over it is safe.
func Entries(m *yaml.Node) []Entry {
	if !IsMapping(m) {
		return nil
	}

	seen := make(map[string]struct{}, len(m.Content)/2)
	entries := make([]Entry, 0, len(m.Content)/2)

	for i := 0; i+1 < len(m.Content); i += 2 {
		k := m.Content[i]
		if k.Kind != yaml.ScalarNode {
			continue
		}

		if _, dup := seen[k.Value]; dup {
			continue
		}

		seen[k.Value] = struct{}{}
		entries = append(entries, Entry{Key: k, Value: m.Content[i+1]})
	}

	return entries
}

// Append adds a new entry at the end of m.
func Append(m *yaml.Node, key, value *yaml.Node) {
	m.Content = append(m.Content, key, value)
}

// Remove deletes the entry whose key sits at index idx of m.Content.
func Remove(m *yaml.Node, idx int) {
	m.Content = append(m.Content[:idx], m.Content[idx+2:]...)
}

// Clone returns a structural copy of n: every node reachable through Content is
// copied together with its comments, tag and style. Alias targets are shared.
func Clone(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}

	c := *n

	if n.Content != nil {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = Clone(child)
		}
	}

	return &c
}
