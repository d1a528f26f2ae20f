package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path given to the Fetcher or WriteAtomic points to a directory.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for a document stored in a file.
// The file is read once at construction time and its content is cached.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor that reads the file at fpath.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// A missing file yields an error matching fs.ErrNotExist.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			path: cleanPath,
			data: data,
		}, nil
	}
}

// Path returns the cleaned path the fetcher read.
func (f *Fetcher) Path() string {
	return f.path
}

// Fetch returns a copy of the content read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// WriteAtomic replaces the file at fpath with data. The data is written to a temporary
// file in the same directory, synced, given perm and renamed over fpath, so readers see
// either the old or the new content. The directory must exist.
func WriteAtomic(fpath string, data []byte, perm os.FileMode) error {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err == nil && stat.IsDir() {
		return fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	tmp, err := os.CreateTemp(filepath.Dir(cleanPath), filepath.Base(cleanPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file for %q: %w", cleanPath, err)
	}

	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) //nolint:errcheck // the file is gone after a successful rename

	_, err = tmp.Write(data)
	if err != nil {
		_ = tmp.Close()

		return fmt.Errorf("writing temporary file %q: %w", tmpPath, err)
	}

	err = tmp.Sync()
	if err != nil {
		_ = tmp.Close()

		return fmt.Errorf("syncing temporary file %q: %w", tmpPath, err)
	}

	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("closing temporary file %q: %w", tmpPath, err)
	}

	err = os.Chmod(tmpPath, perm)
	if err != nil {
		return fmt.Errorf("setting permissions on %q: %w", tmpPath, err)
	}

	err = os.Rename(tmpPath, cleanPath)
	if err != nil {
		return fmt.Errorf("replacing %q: %w", cleanPath, err)
	}

	return nil
}
