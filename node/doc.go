// Package node provides the primitives for working with annotated YAML nodes.
//
// A node is a *yaml.Node from gopkg.in/yaml.v3: a scalar, sequence or mapping that
// carries its own comments. This package adds the operations the document layer is
// built on:
//   - kind predicates and constructors for keys, strings, mappings and string lists
//   - mapping entry lookup where the first matching key wins
//   - structural copies (Clone)
//   - comment access and propagation between nodes (Comments, Propagate)
//   - scalar coercion of textual input and representation of native Go values
//
// Comment slots map onto yaml.v3 fields as follows:
//
//	block  -> HeadComment (lines above the node)
//	inline -> LineComment (trailing the node on its line)
//	end    -> FootComment (after the node's block)
package node
