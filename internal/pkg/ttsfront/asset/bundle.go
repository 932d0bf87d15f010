package asset

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

// Bundle serves assets packaged in a zip archive. Names are matched against
// the full entry path first and then against the entry base name, so a
// bundle may keep its files under a top-level model directory.
type Bundle struct {
	closer io.Closer
	files  map[string]*zip.File
	byBase map[string]*zip.File
}

func OpenBundle(p string) (*Bundle, error) {
	r, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle: %w", err)
	}
	return newBundle(&r.Reader, r), nil
}

// NewBundle reads a zip archive held in r.
func NewBundle(r io.ReaderAt, size int64) (*Bundle, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}
	return newBundle(zr, nil), nil
}

func newBundle(zr *zip.Reader, closer io.Closer) *Bundle {
	b := &Bundle{
		closer: closer,
		files:  make(map[string]*zip.File),
		byBase: make(map[string]*zip.File),
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		b.files[f.Name] = f

		base := path.Base(f.Name)
		if _, seen := b.byBase[base]; !seen {
			b.byBase[base] = f
		}
	}

	return b
}

func (b *Bundle) Open(name string) (io.ReadCloser, error) {
	name = strings.TrimPrefix(name, "/")

	f, ok := b.files[name]
	if !ok {
		f, ok = b.byBase[path.Base(name)]
	}
	if !ok {
		return nil, fmt.Errorf("failed to open asset %s: %w", name, fs.ErrNotExist)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	return rc, nil
}

// Names lists the archive entries.
func (b *Bundle) Names() []string {
	names := make([]string, 0, len(b.files))
	for name := range b.files {
		names = append(names, name)
	}
	return names
}

func (b *Bundle) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}
