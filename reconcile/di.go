package reconcile

import (
	"fmt"

	"github.com/0xalexb/axiom/config"
	documentfetcher "github.com/0xalexb/axiom/config/fetcher/document"
	yamlparser "github.com/0xalexb/axiom/config/parser/yaml"
	"github.com/0xalexb/axiom/document"

	"go.uber.org/fx"
)

// NewModule creates an Fx module for a named reconciled document.
// The name is used as both the module name and the DI named tag for *document.Document and Config.
// If any options are passed, the module supplies Config to DI from those options.
// Otherwise, Config must be provided externally (e.g., via config.Provider).
//
// The document is reconciled, and the file written when needed, while the application
// is constructed. With SaveOnStop it is saved again from an OnStop hook.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(
			fx.Annotate(cfg, fx.ResultTags(nameTag(name))),
		))
	}

	moduleOpts = append(moduleOpts, fx.Provide(
		fx.Annotate(
			func(lifecycle fx.Lifecycle, documentCfg Config) (*document.Document, error) {
				reconciler, err := NewReconciler(name, documentCfg)
				if err != nil {
					return nil, err
				}

				doc, err := reconciler.Reconcile()
				if err != nil {
					return nil, err
				}

				lifecycle.Append(fx.Hook{
					OnStop: reconciler.Stop,
				})

				return doc, nil
			},
			fx.ParamTags("", nameTag(name)),
			fx.ResultTags(nameTag(name)),
		),
	), fx.Invoke(
		fx.Annotate(
			func(*document.Document) {},
			fx.ParamTags(nameTag(name)),
		),
	))

	return fx.Module(name, moduleOpts...)
}

// ProvideSection provides *T decoded from the section at path of the document named name.
// The result passes through config.Provider, so T may implement config.Defaulter and
// config.Validator.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func ProvideSection[T any](name, path string) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(doc *document.Document) (*T, error) {
				fetcher, err := documentfetcher.NewFetcher(doc)()
				if err != nil {
					return nil, err
				}

				return config.Decode[T](yamlparser.NewParser(), fetcher, path)
			},
			fx.ParamTags(nameTag(name)),
		),
	)
}

func nameTag(name string) string {
	return fmt.Sprintf(`name:"%s"`, name)
}
