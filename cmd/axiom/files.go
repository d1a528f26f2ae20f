package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/0xalexb/axiom/document"
)

func loadDocument(path string, options *globalOptions) (*document.Document, error) {
	doc, err := document.LoadFile(path, options.formatOptions()...)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return doc, nil
}

// commit saves doc to path when its text differs from before. With dryRun the
// difference is printed and nothing is written.
func commit(doc *document.Document, path string, before []byte, dryRun bool, printer Printer) error {
	after, err := doc.Bytes()
	if err != nil {
		return err
	}

	if dryRun {
		for _, line := range lineDiff(string(before), string(after)) {
			printer.PrintLine(line)
		}

		return nil
	}

	if bytes.Equal(before, after) {
		slog.Info("document unchanged", "path", path)

		return nil
	}

	return doc.Save(path)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
