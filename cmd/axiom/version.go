package main

import (
	"github.com/0xalexb/axiom"

	"github.com/alecthomas/kingpin/v2"
)

// VersionCommand prints the build version.
type VersionCommand struct{}

// Register is used to register the command to a parent command.
func (c *VersionCommand) Register(app *kingpin.Application, printer Printer) {
	app.Command("version", "Print the version.").Action(func(_ *kingpin.ParseContext) error {
		printer.PrintLine(axiom.VersionString())

		return nil
	})
}
