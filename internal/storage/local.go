package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// localSource reads objects from files under a directory.
type localSource struct {
	dir string
}

// NewLocalSource returns a Source rooted at dir.
func NewLocalSource(dir string) Source {
	return &localSource{dir: dir}
}

func (s *localSource) Location(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *localSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Location(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, s.Location(name))
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
