// Package axiom bootstraps applications whose configuration lives in comment-preserving
// YAML documents reconciled against shipped defaults.
package axiom

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/axiom/document"
	"github.com/0xalexb/axiom/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for application using Fx.
type App struct {
	app       *fx.App
	documents map[string]*document.Document
}

// NewApp creates a new instance of App with Fx configured.
// Documents registered with WithDocument are reconciled here, before Start.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	app := &App{
		app:       nil,
		documents: make(map[string]*document.Document, len(options.Documents)),
	}
	app.app = app.configure(&options)

	return app
}

func (app *App) configure(options *Options) *fx.App {
	logger := createLogger(options.LogLevel, os.Stderr)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logging.LoggerConfig{Level: options.LogLevel, Format: logging.FormatJSON}),
		fx.Supply(logger),
		fx.Options(options.Modules...),
		fx.Options(app.collectDocuments(options.Documents)...),
	)
}

func (app *App) collectDocuments(names []string) []fx.Option {
	invokes := make([]fx.Option, 0, len(names))

	for _, name := range names {
		invokes = append(invokes, fx.Invoke(
			fx.Annotate(
				func(doc *document.Document) {
					app.documents[name] = doc
				},
				fx.ParamTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		))
	}

	return invokes
}

func createLogger(level string, w io.Writer) *slog.Logger {
	config := logging.LoggerConfig{Level: level, Format: logging.FormatJSON}

	return logging.NewLogger(config, w)
}

// Document returns the reconciled document registered under name.
func (app *App) Document(name string) (*document.Document, bool) {
	if app == nil {
		return nil, false
	}

	doc, ok := app.documents[name]

	return doc, ok
}

// Err returns the error the application failed to build with, if any.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err() //nolint:wrapcheck // fx already describes the failing constructor
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
