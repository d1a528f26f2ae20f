// Package config decodes sections of configuration documents into typed structures.
//
// Four extension points make up a decode:
//   - DataFetcher: retrieves the raw document (a file, a reconciled document.Document)
//   - Parser: decodes raw data into the target, navigating to a section first
//   - Defaulter: fills zero fields after decoding
//   - Validator: rejects invalid values
//
// # Path Navigation
//
// Sections are addressed with the same dotted paths the document package uses:
//
//	"server.tls"  -> config["server"]["tls"]
//	""            -> entire document
//
// # Example
//
//	type TLSConfig struct {
//	    Cert string `yaml:"cert"`
//	    Key  string `yaml:"key"`
//	}
//
//	fetcher, err := documentfetcher.NewFetcher(doc)()
//	if err != nil {
//	    return err
//	}
//	cfg, err := config.Decode[TLSConfig](yamlparser.NewParser(), fetcher, "server.tls")
package config
