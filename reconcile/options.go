package reconcile

import "github.com/0xalexb/axiom/document"

// Option defines a function type for configuring a reconciled document.
type Option func(*Config)

// WithPath sets the path of the configuration file.
func WithPath(path string) Option {
	return func(cfg *Config) {
		cfg.Path = path
	}
}

// WithDefaults sets the default document text.
func WithDefaults(data []byte) Option {
	return func(cfg *Config) {
		cfg.Defaults = string(data)
	}
}

// WithIndent sets the indentation width of the written file.
func WithIndent(spaces int) Option {
	return func(cfg *Config) {
		cfg.Indent = spaces
	}
}

// WithMergeOptions sets the merge policy.
func WithMergeOptions(opts ...document.MergeOption) Option {
	return func(cfg *Config) {
		options := cfg.MergeOptions()

		for _, apply := range opts {
			apply(&options)
		}

		cfg.OverwriteComments = options.OverwriteComments
		cfg.OverwriteInvalid = options.OverwriteInvalid
		cfg.OverwriteValues = options.OverwriteValues
	}
}

// WithSaveOnStop saves the document when the application stops.
func WithSaveOnStop() Option {
	return func(cfg *Config) {
		cfg.SaveOnStop = true
	}
}
