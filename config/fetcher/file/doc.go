// Package file reads and writes configuration documents on the filesystem.
//
// Fetcher implements the config.DataFetcher interface. The file is read at
// construction time and cached, subsequent calls to Fetch() return the same
// data without touching the filesystem again.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.yaml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// WriteAtomic is the write side: it replaces a file through a temporary file and a
// rename, so an interrupted write never leaves a truncated document behind.
//
//	err := file.WriteAtomic("/path/to/config.yaml", data, 0o644)
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, fs.ErrNotExist) to detect a missing file
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
