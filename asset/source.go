package asset

import (
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Source enumerates and opens emoji asset files.
type Source interface {
	// List returns the names of all available assets.
	List() ([]string, error)

	// Open opens the named asset for reading.
	Open(name string) (io.ReadCloser, error)
}

// fsSource serves the regular files at the top level of an fs.FS.
type fsSource struct {
	fsys fs.FS
}

// FS returns a Source over the top-level regular files of fsys.
// Sub-directories are ignored.
func FS(fsys fs.FS) Source {
	return &fsSource{fsys: fsys}
}

// Dir returns a Source over the files of a directory on disk.
func Dir(path string) Source {
	return &fsSource{fsys: os.DirFS(path)}
}

// List implements Source.List.
func (s *fsSource) List() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("asset: list: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Open implements Source.Open.
func (s *fsSource) Open(name string) (io.ReadCloser, error) {
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("asset: open %q: %w", name, fs.ErrInvalid)
	}
	return s.fsys.Open(name)
}
