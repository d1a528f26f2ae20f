// Package document manages human-edited YAML configuration documents while keeping
// every comment intact across load, mutation and save.
//
// A Document owns the whole node tree of one configuration. A Section is a view of a
// mapping inside that tree and exposes the same accessors scoped to it; Document embeds
// the Section of its root mapping.
//
// # Paths
//
// Values are addressed by dot-separated mapping keys:
//
//	"server"            -> root["server"]
//	"server.tls.cert"   -> root["server"]["tls"]["cert"]
//
// Only mapping keys are addressable. When a mapping has the same key more than once,
// the first occurrence is the one read, replaced, deleted and merged; later duplicates
// are left as they are.
//
// # Comments
//
// Set keeps the comments of the entry it replaces. Merge copies comments from the
// default document either into empty slots only or unconditionally, see
// WithOverwriteComments.
//
// # Example
//
//	doc, err := document.Parse([]byte("port: 8080 # listen port\n"))
//	if err != nil {
//	    return err
//	}
//	_ = doc.Set("port", "9090")   // "port: 9090 # listen port\n"
//
//	defaults, _ := document.Parse(shippedDefaults)
//	changes := doc.Merge(defaults)
//	if !changes.Empty() {
//	    err = doc.Save("config.yaml")
//	}
//
// # Concurrency
//
// Documents and Sections are not safe for concurrent use. Mutations rewrite the tree
// in place; callers sharing a document between goroutines must serialize access.
package document
