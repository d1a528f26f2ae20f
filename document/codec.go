package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/0xalexb/axiom/node"

	"gopkg.in/yaml.v3"
)

// decode parses data into a document node whose single child is the root mapping.
func decode(data []byte) (*yaml.Node, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node

	err := decoder.Decode(&doc)
	if errors.Is(err, io.EOF) {
		empty := emptyDocument()
		empty.HeadComment = commentLines(data)

		return empty, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	var next yaml.Node

	err = decoder.Decode(&next)
	if err == nil {
		return nil, fmt.Errorf("%w: more than one document in input", ErrInvalidDocument)
	}

	if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("%w: unexpected %s at top level", ErrInvalidDocument, node.KindName(&doc))
	}

	root := doc.Content[0]

	if isEmptyScalar(root) {
		mapping := node.NewMapping()
		node.Propagate(&doc, root, false)
		doc.Content[0] = mapping

		if doc.HeadComment == "" && doc.FootComment == "" {
			doc.HeadComment = commentLines(data)
		}

		return &doc, nil
	}

	if !node.IsMapping(root) {
		return nil, fmt.Errorf("%w: root is a %s, not a mapping", ErrInvalidDocument, node.KindName(root))
	}

	return &doc, nil
}

// encode writes n with the emitter configured by format. A document without entries
// but with comments is written as its comments alone.
func encode(w io.Writer, n *yaml.Node, format Format) error {
	if isCommentOnly(n) {
		return writeComments(w, n)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(format.Indent)

	err := encoder.Encode(n)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	return nil
}

func emptyDocument() *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node.NewMapping()},
	}
}

// isEmptyScalar matches the implicit null a comment-only document parses to.
func isEmptyScalar(n *yaml.Node) bool {
	return node.IsScalar(n) && n.Tag == "!!null" && n.Value == "" && n.Style == 0
}

// commentLines returns the comment lines of input that holds no YAML content. Blank
// lines between comments are kept.
func commentLines(data []byte) string {
	var lines []string

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "#") || (line == "" && len(lines) > 0) {
			lines = append(lines, line)
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func isCommentOnly(n *yaml.Node) bool {
	if n.Kind != yaml.DocumentNode || len(n.Content) != 1 {
		return false
	}

	root := n.Content[0]
	if !node.IsMapping(root) || len(root.Content) > 0 || !node.CommentsOf(root).IsZero() {
		return false
	}

	return n.HeadComment != "" || n.FootComment != ""
}

func writeComments(w io.Writer, n *yaml.Node) error {
	for _, comment := range []string{n.HeadComment, n.FootComment} {
		if comment == "" {
			continue
		}

		_, err := io.WriteString(w, comment+"\n")
		if err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}
	}

	return nil
}
