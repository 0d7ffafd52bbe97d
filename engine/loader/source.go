package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// ErrNotFound is returned when a Source has no file at the requested path.
var ErrNotFound = errors.New("asset not found")

// Source resolves logical asset paths (slash separated, relative) to readable files.
type Source interface {
	// Open opens the asset at p.
	//
	// Parameters:
	//   - p: the logical asset path
	//
	// Returns:
	//   - io.ReadCloser: the asset contents, closed by the caller
	//   - error: ErrNotFound if the asset does not exist
	Open(p string) (io.ReadCloser, error)
}

// fsSource serves assets from an fs.FS.
type fsSource struct {
	fsys fs.FS
	name string
}

var _ Source = &fsSource{}

// NewFSSource creates a Source over an fs.FS, such as an embed.FS or fstest.MapFS.
//
// Parameters:
//   - fsys: the file system to read from
//
// Returns:
//   - Source: the new source
func NewFSSource(fsys fs.FS) Source {
	return &fsSource{fsys: fsys, name: "fs"}
}

// NewDirSource creates a Source rooted at a directory on disk.
//
// Parameters:
//   - root: the directory logical paths are resolved against
//
// Returns:
//   - Source: the new source
func NewDirSource(root string) Source {
	return &fsSource{fsys: os.DirFS(root), name: root}
}

func (s *fsSource) Open(p string) (io.ReadCloser, error) {
	clean := path.Clean(strings.TrimPrefix(p, "/"))
	f, err := s.fsys.Open(clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, fmt.Errorf("%s in %s: %w", p, s.name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", p, err)
	}
	return f, nil
}

// ReadAll reads a whole asset from src.
//
// Parameters:
//   - src: the source to read from
//   - p: the logical asset path
//
// Returns:
//   - []byte: the asset contents
//   - error: ErrNotFound or a read error
func ReadAll(src Source, p string) ([]byte, error) {
	rc, err := src.Open(p)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rc); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return buf.Bytes(), nil
}
