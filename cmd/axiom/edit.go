package main

import (
	"errors"

	"github.com/alecthomas/kingpin/v2"
)

var errSingleValue = errors.New("exactly one value expected, use --list for sequences")

// EditCommand changes single entries of a document.
type EditCommand struct {
	options *globalOptions
	printer Printer

	file   string
	path   string
	values []string
	list   bool
	dryRun bool
}

// Register is used to register the command to a parent command.
func (c *EditCommand) Register(app *kingpin.Application, options *globalOptions, printer Printer) {
	c.options = options
	c.printer = printer

	setCmd := app.Command("set", "Set the value at a dotted path, keeping its comments.").Action(c.set)
	setCmd.Arg("file", "Configuration file.").Required().StringVar(&c.file)
	setCmd.Arg("path", "Dotted path of the value.").Required().StringVar(&c.path)
	setCmd.Arg("value", "New value. Numbers and true/false are stored typed.").Required().StringsVar(&c.values)
	setCmd.Flag("list", "Store the values as a list of strings.").BoolVar(&c.list)
	setCmd.Flag("dry-run", "Print the change instead of writing the file.").BoolVar(&c.dryRun)

	deleteCmd := app.Command("delete", "Remove the entry at a dotted path.").Action(c.delete)
	deleteCmd.Arg("file", "Configuration file.").Required().StringVar(&c.file)
	deleteCmd.Arg("path", "Dotted path of the entry.").Required().StringVar(&c.path)
	deleteCmd.Flag("dry-run", "Print the change instead of writing the file.").BoolVar(&c.dryRun)
}

func (c *EditCommand) set(_ *kingpin.ParseContext) error {
	var value any = c.values

	if !c.list {
		if len(c.values) != 1 {
			return errSingleValue
		}

		value = c.values[0]
	}

	return c.edit(func(set func(string, any) error, _ func(string) error) error {
		return set(c.path, value)
	})
}

func (c *EditCommand) delete(_ *kingpin.ParseContext) error {
	return c.edit(func(_ func(string, any) error, del func(string) error) error {
		return del(c.path)
	})
}

func (c *EditCommand) edit(change func(set func(string, any) error, del func(string) error) error) error {
	doc, err := loadDocument(c.file, c.options)
	if err != nil {
		return err
	}

	before, err := doc.Bytes()
	if err != nil {
		return err
	}

	err = change(doc.Set, doc.Delete)
	if err != nil {
		return err
	}

	return commit(doc, c.file, before, c.dryRun, c.printer)
}
