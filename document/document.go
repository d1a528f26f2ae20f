package document

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/0xalexb/axiom/config/fetcher/file"
	"github.com/0xalexb/axiom/node"

	"gopkg.in/yaml.v3"
)

// FileMode is the permission Save gives to written files.
const FileMode = 0o644

// Document owns a configuration tree rooted at a mapping, together with the format it
// is serialized with. The embedded Section is the view of the root mapping.
type Document struct {
	Section

	node *yaml.Node
}

// New returns an empty document.
func New(opts ...Option) (*Document, error) {
	format, err := newFormat(opts)
	if err != nil {
		return nil, err
	}

	return newDocument(emptyDocument(), format), nil
}

// Parse parses data into a document. Empty input gives an empty document. Input whose
// root is not a mapping, or that holds more than one YAML document, is rejected with
// ErrInvalidDocument.
func Parse(data []byte, opts ...Option) (*Document, error) {
	format, err := newFormat(opts)
	if err != nil {
		return nil, err
	}

	doc, err := decode(data)
	if err != nil {
		return nil, err
	}

	return newDocument(doc, format), nil
}

// Load reads r to the end and parses it.
func Load(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	return Parse(data, opts...)
}

// LoadFile reads and parses the file at path.
func LoadFile(path string, opts ...Option) (*Document, error) {
	fetcher, err := file.NewFetcher(path)()
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}

	doc, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}

	slog.Debug("document loaded", slog.String("path", path))

	return doc, nil
}

func newDocument(doc *yaml.Node, format Format) *Document {
	return &Document{
		Section: Section{root: doc.Content[0], format: format},
		node:    doc,
	}
}

// Formatting returns the formatting settings of the document.
func (d *Document) Formatting() Format {
	return d.format
}

// Bytes serializes the whole document, including comments above the first entry and
// below the last one.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer

	err := encode(&buf, d.node, d.format)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Text is Bytes as a string.
func (d *Document) Text() (string, error) {
	data, err := d.Bytes()
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// WriteTo writes the serialized document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := d.Bytes()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("writing document: %w", err)
	}

	return int64(n), nil
}

// Save writes the document to path. The file is replaced atomically: on failure the
// previous content is left untouched.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}

	err = file.WriteAtomic(path, data, FileMode)
	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}

	slog.Debug("document saved", slog.String("path", path), slog.Int("bytes", len(data)))

	return nil
}

// Clone returns a deep copy of the document with the same format.
func (d *Document) Clone() *Document {
	return newDocument(node.Clone(d.node), d.format)
}

// Merge reconciles d against defaults, see Section.Merge. Comments above the first
// and below the last entry of the file are propagated with the same comment policy.
func (d *Document) Merge(defaults *Document, opts ...MergeOption) Changes {
	if defaults == nil {
		return Changes{}
	}

	options := newMergeOptions(opts)

	node.Propagate(d.node, defaults.node, options.OverwriteComments)

	return d.Section.merge(&defaults.Section, options)
}
