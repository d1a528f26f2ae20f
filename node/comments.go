package node

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Comments is the set of comments attached to a single node.
// Lines keep their leading '#'.
type Comments struct {
	Block  []string
	Inline string
	End    []string
}

// IsZero reports whether no comment slot is set.
func (c Comments) IsZero() bool {
	return len(c.Block) == 0 && c.Inline == "" && len(c.End) == 0
}

// CommentsOf returns the comments attached to n.
func CommentsOf(n *yaml.Node) Comments {
	if n == nil {
		return Comments{}
	}

	return Comments{
		Block:  splitLines(n.HeadComment),
		Inline: n.LineComment,
		End:    splitLines(n.FootComment),
	}
}

// SetComments replaces every comment slot of n with c.
func SetComments(n *yaml.Node, c Comments) {
	if n == nil {
		return
	}

	n.HeadComment = joinLines(c.Block)
	n.LineComment = normalizeLine(c.Inline)
	n.FootComment = joinLines(c.End)
}

// Propagate copies comments from source onto target.
//
// With overwrite set every slot is copied, an empty source slot erases the target's
// comment. Without it only the slots where target has no comment are filled, the
// target's own comments are never touched. A nil source has no comments.
func Propagate(target, source *yaml.Node, overwrite bool) {
	if target == nil {
		return
	}

	var head, line, foot string
	if source != nil {
		head, line, foot = source.HeadComment, source.LineComment, source.FootComment
	}

	if overwrite {
		target.HeadComment = head
		target.LineComment = line
		target.FootComment = foot

		return
	}

	if target.HeadComment == "" {
		target.HeadComment = head
	}

	if target.LineComment == "" {
		target.LineComment = line
	}

	if target.FootComment == "" {
		target.FootComment = foot
	}
}

func splitLines(comment string) []string {
	if comment == "" {
		return nil
	}

	return strings.Split(comment, "\n")
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	normalized := make([]string, len(lines))
	for i, line := range lines {
		normalized[i] = normalizeLine(line)
	}

	return strings.Join(normalized, "\n")
}

// normalizeLine makes sure a non-empty comment line starts with '#'.
func normalizeLine(line string) string {
	if line == "" || strings.HasPrefix(line, "#") {
		return line
	}

	return "# " + line
}
