// Package asset resolves logical asset names such as "tokens.txt" to
// readable streams, whether the files live in a directory, an embedded file
// system or a packaged zip bundle.
package asset

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Source opens an asset by logical name.
type Source interface {
	Open(name string) (io.ReadCloser, error)
}

// Dir serves assets from a directory on disk.
type Dir string

func (d Dir) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(string(d), filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %s: %w", name, err)
	}
	return f, nil
}

// FS serves assets from an fs.FS, typically an embed.FS.
type FS struct {
	FS fs.FS
}

func (s FS) Open(name string) (io.ReadCloser, error) {
	f, err := s.FS.Open(path.Clean(strings.TrimPrefix(filepath.ToSlash(name), "/")))
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %s: %w", name, err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns a Source for location. A ".zip" file is opened as a Bundle,
// anything else must be a directory. The returned io.Closer releases the
// underlying resources once all assets have been read.
func Open(location string) (Source, io.Closer, error) {
	info, err := os.Stat(location)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat assets: %w", err)
	}

	if info.IsDir() {
		return Dir(location), nopCloser{}, nil
	}

	if strings.EqualFold(filepath.Ext(location), ".zip") {
		b, err := OpenBundle(location)
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil
	}

	return nil, nil, fmt.Errorf("unsupported asset location %s: expected a directory or .zip bundle", location)
}
