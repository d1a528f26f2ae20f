package node

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedValue is returned when a Go value has no node representation.
var ErrUnsupportedValue = errors.New("unsupported value")

var (
	intPattern   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^[+-]?([0-9]+\.[0-9]+([eE][+-]?[0-9]+)?|[0-9]+[eE][+-]?[0-9]+)$`)
)

// Coerce infers a typed scalar from text. Inference is tried in this order:
// integer, decimal, the literals true/false (case-sensitive), and falls back to a
// plain string.
//
// Integers are normalized to their decimal form ("+07" becomes "7"). Decimals keep
// the text they were written with.
func Coerce(text string) *yaml.Node {
	if intPattern.MatchString(text) {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: IntTag, Value: strconv.FormatInt(v, 10)}
		}
	}

	if floatPattern.MatchString(text) {
		if _, err := strconv.ParseFloat(text, 64); err == nil {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: FloatTag, Value: text}
		}
	}

	if text == "true" || text == "false" {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: BoolTag, Value: text}
	}

	return NewString(text)
}

// FromValue builds a node for a value handed to a setter.
//
//   - nil (or a nil *yaml.Node) returns nil, meaning "remove".
//   - *yaml.Node and yaml.Node are copied with Clone; a document node is unwrapped.
//   - string goes through Coerce.
//   - []string becomes a sequence of double-quoted strings.
//   - anything else is represented by yaml.v3 as-is, without inference.
func FromValue(value any) (n *yaml.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			n = nil
			err = fmt.Errorf("%w: %T: %v", ErrUnsupportedValue, value, r)
		}
	}()

	switch v := value.(type) {
	case nil:
		return nil, nil
	case *yaml.Node:
		if v == nil {
			return nil, nil
		}

		return unwrapDocument(Clone(v)), nil
	case yaml.Node:
		return unwrapDocument(Clone(&v)), nil
	case string:
		return Coerce(v), nil
	case []string:
		return NewStringSequence(v), nil
	}

	if !representable(reflect.TypeOf(value)) {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}

	var encoded yaml.Node

	err = encoded.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %w", ErrUnsupportedValue, value, err)
	}

	return &encoded, nil
}

func unwrapDocument(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		return n.Content[0]
	}

	return n
}

func representable(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() { //nolint:exhaustive // only the kinds yaml.v3 refuses matter here
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return false
	default:
		return true
	}
}
