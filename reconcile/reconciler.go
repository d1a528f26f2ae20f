package reconcile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/0xalexb/axiom/document"
)

// Reconciler loads a configuration file and merges the shipped defaults into it.
type Reconciler struct {
	name   string
	config Config
	doc    *document.Document
}

// NewReconciler creates a new Reconciler with the given name and config.
// It sets config defaults and validates the config.
func NewReconciler(name string, cfg Config) (*Reconciler, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &Reconciler{
		name:   name,
		config: cfg,
		doc:    nil,
	}, nil
}

// Reconcile loads the file, or starts from an empty document when it does not exist,
// merges the defaults into it and writes the file back when its text changed.
func (r *Reconciler) Reconcile() (*document.Document, error) {
	format := document.WithIndent(r.config.Indent)

	doc, err := document.LoadFile(r.config.Path, format)

	created := errors.Is(err, fs.ErrNotExist)
	if created {
		doc, err = document.New(format)
	}

	if err != nil {
		return nil, fmt.Errorf("loading %s document: %w", r.name, err)
	}

	defaults, err := document.Parse([]byte(r.config.Defaults), format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s defaults: %w", r.name, err)
	}

	before, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encoding %s document: %w", r.name, err)
	}

	changes := doc.Merge(defaults, document.WithMergeOptions(r.config.MergeOptions()))

	after, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encoding %s document: %w", r.name, err)
	}

	r.doc = doc

	slog.Info("defaults applied",
		"name", r.name,
		"path", r.config.Path,
		"created", created,
		"added", len(changes.Added),
		"replaced", len(changes.Replaced),
		"repaired", len(changes.Repaired),
	)

	if created || !bytes.Equal(before, after) {
		err = r.save()
		if err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// Stop saves the document when SaveOnStop is set.
func (r *Reconciler) Stop(_ context.Context) error {
	if !r.config.SaveOnStop || r.doc == nil {
		return nil
	}

	return r.save()
}

// Document returns the reconciled document, nil before Reconcile succeeded.
func (r *Reconciler) Document() *document.Document {
	return r.doc
}

func (r *Reconciler) save() error {
	err := r.doc.Save(r.config.Path)
	if err != nil {
		slog.Error("failed to save document", "name", r.name, "path", r.config.Path, "error", err)

		return fmt.Errorf("saving %s document: %w", r.name, err)
	}

	slog.Info("document saved", "name", r.name, "path", r.config.Path)

	return nil
}
