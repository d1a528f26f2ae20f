package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
)

var errUnformatted = errors.New("file is not formatted")

// FormatCommand rewrites a file in canonical form.
type FormatCommand struct {
	options *globalOptions
	printer Printer

	file  string
	check bool
}

// Register is used to register the command to a parent command.
func (c *FormatCommand) Register(app *kingpin.Application, options *globalOptions, printer Printer) {
	c.options = options
	c.printer = printer

	cmd := app.Command("fmt", "Rewrite a file with canonical indentation and quoting.").Action(c.run)
	cmd.Arg("file", "Configuration file.").Required().ExistingFileVar(&c.file)
	cmd.Flag("check", "Print the difference and fail instead of writing the file.").BoolVar(&c.check)
}

func (c *FormatCommand) run(_ *kingpin.ParseContext) error {
	raw, err := os.ReadFile(c.file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.file, err)
	}

	doc, err := loadDocument(c.file, c.options)
	if err != nil {
		return err
	}

	formatted, err := doc.Bytes()
	if err != nil {
		return err
	}

	if bytes.Equal(raw, formatted) {
		return nil
	}

	if c.check {
		for _, line := range lineDiff(string(raw), string(formatted)) {
			c.printer.PrintLine(line)
		}

		return fmt.Errorf("%s: %w", c.file, errUnformatted)
	}

	return doc.Save(c.file)
}
