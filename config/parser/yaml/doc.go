// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for decoding. Dotted section paths
// (e.g. "server.tls") are turned into goccy/go-yaml paths (e.g. "$.server.tls")
// with yaml.PathBuilder, so the parser reads only the selected node.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var cfg TLSConfig
//	err := parser.Parse(data, &cfg, "server.tls")
//
// Path Conversion:
//   - Empty path "" -> unmarshal entire document
//   - Single key "key" -> "$.key"
//   - Nested path "server.tls" -> "$.server.tls"
//   - Empty segments ("a..b", "a.") -> ErrInvalidPath
package yaml
