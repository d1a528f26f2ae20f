// Command axiom reads, edits and reconciles comment-preserving YAML configuration files.
package main

import (
	"log/slog"
	"os"

	"github.com/0xalexb/axiom/document"
	"github.com/0xalexb/axiom/logging"

	"github.com/alecthomas/kingpin/v2"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	logLevel string
	indent   int
}

func (o *globalOptions) formatOptions() []document.Option {
	return []document.Option{document.WithIndent(o.indent)}
}

func newApp(printer Printer) *kingpin.Application {
	app := kingpin.New("axiom", "Reads, edits and reconciles YAML configuration files without losing comments.")

	options := &globalOptions{}
	app.Flag("log-level", "Log level.").Default("warn").EnumVar(&options.logLevel, "debug", "info", "warn", "error")
	app.Flag("indent", "Indentation width of written files.").Default("2").IntVar(&options.indent)

	app.PreAction(func(_ *kingpin.ParseContext) error {
		slog.SetDefault(logging.NewTextLogger(options.logLevel, os.Stderr))

		return nil
	})

	(&ReadCommand{}).Register(app, options, printer)
	(&EditCommand{}).Register(app, options, printer)
	(&MergeCommand{}).Register(app, options, printer)
	(&FormatCommand{}).Register(app, options, printer)
	(&VersionCommand{}).Register(app, printer)

	return app
}

func main() {
	app := newApp(&WriterPrinter{Writer: os.Stdout})

	kingpin.MustParse(app.Parse(os.Args[1:]))
}
