package document

import (
	"github.com/0xalexb/axiom/node"

	"gopkg.in/yaml.v3"
)

// MergeOptions is the policy Merge reconciles a section against its defaults with.
type MergeOptions struct {
	// OverwriteComments copies every comment of the defaults, erasing current comments
	// the defaults do not have. When unset, defaults only fill comment slots that are empty.
	OverwriteComments bool
	// OverwriteInvalid replaces an entry with a copy of the default entry when the default
	// is a mapping and the current value is not.
	OverwriteInvalid bool
	// OverwriteValues replaces the direct entries of the merged section with copies of
	// the default entries, comments included. Nested mappings are always merged without it.
	OverwriteValues bool
}

// MergeOption defines a function type for configuring a merge.
type MergeOption func(*MergeOptions)

// WithOverwriteComments enables OverwriteComments.
func WithOverwriteComments() MergeOption {
	return func(o *MergeOptions) {
		o.OverwriteComments = true
	}
}

// WithOverwriteInvalid enables OverwriteInvalid.
func WithOverwriteInvalid() MergeOption {
	return func(o *MergeOptions) {
		o.OverwriteInvalid = true
	}
}

// WithOverwriteValues enables OverwriteValues.
func WithOverwriteValues() MergeOption {
	return func(o *MergeOptions) {
		o.OverwriteValues = true
	}
}

// WithMergeOptions sets the whole policy at once.
func WithMergeOptions(options MergeOptions) MergeOption {
	return func(o *MergeOptions) {
		*o = options
	}
}

func newMergeOptions(opts []MergeOption) MergeOptions {
	var options MergeOptions

	for _, apply := range opts {
		apply(&options)
	}

	return options
}

// Changes lists the dotted paths, relative to the merged section, of the entries a
// merge changed.
type Changes struct {
	// Added entries were missing and copied from the defaults.
	Added []string
	// Replaced entries were overwritten because of OverwriteValues.
	Replaced []string
	// Repaired entries were not mappings and were replaced because of OverwriteInvalid.
	Repaired []string
}

// Empty reports whether the merge left every value untouched. Comment changes are not
// tracked.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Replaced) == 0 && len(c.Repaired) == 0
}

// Merge reconciles s against defaults. Entries missing from s are copied from defaults
// at the end of their mapping, nested mappings are merged recursively, and entries only
// present in s are kept. Comments are propagated from defaults on every visited entry.
//
// Only the first entry of a duplicated key takes part, in both sections.
func (s *Section) Merge(defaults *Section, opts ...MergeOption) Changes {
	if defaults == nil {
		return Changes{}
	}

	return s.merge(defaults, newMergeOptions(opts))
}

func (s *Section) merge(defaults *Section, options MergeOptions) Changes {
	var changes Changes

	node.Propagate(s.root, defaults.root, options.OverwriteComments)
	mergeEntries(s.root, defaults.root, "", options, &changes)

	return changes
}

func mergeEntries(current, defaults *yaml.Node, prefix string, options MergeOptions, changes *Changes) {
	for _, entry := range node.Entries(defaults) {
		path := joinPath(prefix, entry.Key.Value)

		idx := node.KeyIndex(current, entry.Key.Value)
		if idx < 0 {
			node.Append(current, node.Clone(entry.Key), node.Clone(entry.Value))
			changes.Added = append(changes.Added, path)

			continue
		}

		if options.OverwriteValues {
			replaceValue(current, idx, entry)
			changes.Replaced = append(changes.Replaced, path)

			continue
		}

		key, value := current.Content[idx], current.Content[idx+1]

		node.Propagate(key, entry.Key, options.OverwriteComments)
		node.Propagate(value, entry.Value, options.OverwriteComments)

		if !node.IsMapping(entry.Value) {
			continue
		}

		switch {
		case node.IsMapping(value):
			nested := options
			nested.OverwriteValues = false

			mergeEntries(value, entry.Value, path, nested, changes)
		case options.OverwriteInvalid:
			replaceValue(current, idx, entry)
			changes.Repaired = append(changes.Repaired, path)
		}
	}
}

// replaceValue swaps the entry at idx for a copy of the default entry, key and value
// nodes with the default's comments.
func replaceValue(current *yaml.Node, idx int, entry node.Entry) {
	current.Content[idx] = node.Clone(entry.Key)
	current.Content[idx+1] = node.Clone(entry.Value)
}
