package axiom

import (
	"github.com/0xalexb/axiom/reconcile"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	Documents []string
	LogLevel  string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithDocument adds a named reconciled document to the application.
// The name is used as both the Fx module name and the DI named tag for *document.Document and reconcile.Config.
// When options are provided (e.g., reconcile.WithPath), the Config is supplied to DI automatically.
// Call multiple times with different names to manage several files.
func WithDocument(name string, opts ...reconcile.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, reconcile.NewModule(name, opts...))
		o.Documents = append(o.Documents, name)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
