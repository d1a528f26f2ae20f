// Package document provides a DataFetcher over an in-memory configuration document.
//
// The fetcher serializes its source on every Fetch, so values set or merged into a
// document.Document after the fetcher was built are visible to the next decode.
//
// Usage:
//
//	doc, _ := document.LoadFile("config.yaml")
//	fetcher, err := documentfetcher.NewFetcher(doc)()
//	cfg, err := config.Decode[ServerConfig](yamlparser.NewParser(), fetcher, "server")
package document
