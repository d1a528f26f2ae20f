package main

import (
	"fmt"

	"github.com/0xalexb/axiom/document"
	"github.com/0xalexb/axiom/node"

	"github.com/alecthomas/kingpin/v2"
)

// ReadCommand prints values, keys and paths of a document.
type ReadCommand struct {
	options *globalOptions
	printer Printer

	file string
	path string
}

// Register is used to register the command to a parent command.
func (c *ReadCommand) Register(app *kingpin.Application, options *globalOptions, printer Printer) {
	c.options = options
	c.printer = printer

	getCmd := app.Command("get", "Print the value at a dotted path.").Action(c.get)
	getCmd.Arg("file", "Configuration file.").Required().StringVar(&c.file)
	getCmd.Arg("path", "Dotted path of the value.").Required().StringVar(&c.path)

	keysCmd := app.Command("keys", "List the keys of the mapping at a dotted path.").Action(c.keys)
	keysCmd.Arg("file", "Configuration file.").Required().StringVar(&c.file)
	keysCmd.Arg("path", "Dotted path of the mapping, the root when omitted.").StringVar(&c.path)

	pathsCmd := app.Command("paths", "List every dotted path of a document.").Action(c.paths)
	pathsCmd.Arg("file", "Configuration file.").Required().StringVar(&c.file)
}

func (c *ReadCommand) get(_ *kingpin.ParseContext) error {
	doc, err := loadDocument(c.file, c.options)
	if err != nil {
		return err
	}

	n, ok := doc.Node(c.path)
	if !ok {
		return fmt.Errorf("%w: %q", document.ErrNotFound, c.path)
	}

	switch {
	case node.IsScalar(n):
		c.printer.PrintLine(n.Value)
	case node.IsSequence(n):
		items, _ := doc.StringList(c.path)
		for _, item := range items {
			c.printer.PrintLine(item)
		}
	default:
		section, ok := doc.Sub(c.path)
		if !ok {
			return fmt.Errorf("cannot print a %s at %q", node.KindName(n), c.path)
		}

		data, err := section.Bytes()
		if err != nil {
			return err
		}

		printText(c.printer, string(data))
	}

	return nil
}

func (c *ReadCommand) keys(_ *kingpin.ParseContext) error {
	doc, err := loadDocument(c.file, c.options)
	if err != nil {
		return err
	}

	section, ok := doc.Sub(c.path)
	if !ok {
		return fmt.Errorf("%w: no mapping at %q", document.ErrNotFound, c.path)
	}

	for _, key := range section.Keys() {
		c.printer.PrintLine(key)
	}

	return nil
}

func (c *ReadCommand) paths(_ *kingpin.ParseContext) error {
	doc, err := loadDocument(c.file, c.options)
	if err != nil {
		return err
	}

	for _, path := range doc.Paths() {
		c.printer.PrintLine(path)
	}

	return nil
}
