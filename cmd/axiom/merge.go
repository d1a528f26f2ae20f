package main

import (
	"fmt"

	"github.com/0xalexb/axiom/document"

	"github.com/alecthomas/kingpin/v2"
)

// MergeCommand reconciles a file against a defaults file.
type MergeCommand struct {
	options *globalOptions
	printer Printer

	file     string
	defaults string
	merge    document.MergeOptions
	dryRun   bool
}

// Register is used to register the command to a parent command.
func (c *MergeCommand) Register(app *kingpin.Application, options *globalOptions, printer Printer) {
	c.options = options
	c.printer = printer

	cmd := app.Command("merge", "Add entries missing from a file using a defaults file.").Action(c.run)
	cmd.Arg("file", "Configuration file, created when missing.").Required().StringVar(&c.file)
	cmd.Arg("defaults", "File holding the default values and comments.").Required().ExistingFileVar(&c.defaults)
	cmd.Flag("overwrite-comments", "Replace existing comments with the defaults' comments.").BoolVar(&c.merge.OverwriteComments)
	cmd.Flag("overwrite-invalid", "Replace values whose shape disagrees with the defaults.").BoolVar(&c.merge.OverwriteInvalid)
	cmd.Flag("overwrite-values", "Replace every value present in the defaults.").BoolVar(&c.merge.OverwriteValues)
	cmd.Flag("dry-run", "Print the change instead of writing the file.").BoolVar(&c.dryRun)
}

func (c *MergeCommand) run(_ *kingpin.ParseContext) error {
	defaults, err := loadDocument(c.defaults, c.options)
	if err != nil {
		return err
	}

	doc, created, err := c.target()
	if err != nil {
		return err
	}

	before, err := doc.Bytes()
	if err != nil {
		return err
	}

	// A missing file compares against nothing, so it is written even when the merge
	// adds no entry.
	if created {
		before = nil
	}

	changes := doc.Merge(defaults, document.WithMergeOptions(c.merge))

	c.report("added", changes.Added)
	c.report("replaced", changes.Replaced)
	c.report("repaired", changes.Repaired)

	return commit(doc, c.file, before, c.dryRun, c.printer)
}

// target loads the file to merge into. A missing file starts out as an empty document
// and created is set.
func (c *MergeCommand) target() (doc *document.Document, created bool, err error) {
	doc, err = loadDocument(c.file, c.options)
	if err == nil {
		return doc, false, nil
	}

	if !isNotExist(err) {
		return nil, false, err
	}

	doc, err = document.New(c.options.formatOptions()...)
	if err != nil {
		return nil, false, fmt.Errorf("creating %s: %w", c.file, err)
	}

	c.printer.PrintLine("created " + c.file)

	return doc, true, nil
}

func (c *MergeCommand) report(action string, paths []string) {
	for _, path := range paths {
		c.printer.PrintLine(action + " " + path)
	}
}
