// Package reconcile provides an Fx module that keeps a configuration file in step with
// the defaults an application ships.
package reconcile

import (
	"errors"

	"github.com/0xalexb/axiom/document"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("document name must not be empty")

// ErrEmptyPath is returned when no file path is configured.
var ErrEmptyPath = errors.New("document path must not be empty")

// Config holds the configuration for one reconciled document.
type Config struct {
	// Path of the user's configuration file. It is created when missing.
	Path string `yaml:"path"`
	// Defaults is the YAML text of the shipped default document.
	Defaults string `yaml:"defaults"`
	// Indent is the indentation width the file is written with.
	Indent int `yaml:"indent"`

	OverwriteComments bool `yaml:"overwrite_comments"`
	OverwriteInvalid  bool `yaml:"overwrite_invalid"`
	OverwriteValues   bool `yaml:"overwrite_values"`

	// SaveOnStop writes the document back when the application stops.
	SaveOnStop bool `yaml:"save_on_stop"`
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() {
	if c.Indent == 0 {
		c.Indent = document.DefaultIndent
	}
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrEmptyPath
	}

	return nil
}

// MergeOptions returns the merge policy of the Config.
func (c *Config) MergeOptions() document.MergeOptions {
	return document.MergeOptions{
		OverwriteComments: c.OverwriteComments,
		OverwriteInvalid:  c.OverwriteInvalid,
		OverwriteValues:   c.OverwriteValues,
	}
}
