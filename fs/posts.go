// Package fs provides file-based storage for the post archive.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/retitle"
)

// Ensure PostStore implements retitle.PostStore at compile time.
var _ retitle.PostStore = (*PostStore)(nil)

// PostStore reads and rewrites archived posts stored as <filename>.html in a
// single directory.
type PostStore struct {
	dir string
}

// NewPostStore creates a new PostStore over the given posts directory.
func NewPostStore(dir string) *PostStore {
	return &PostStore{dir: dir}
}

// Path returns the HTML file path for filename.
func (s *PostStore) Path(filename string) string {
	return filepath.Join(s.dir, filename+".html")
}

func (s *PostStore) Exists(ctx context.Context, filename string) (bool, error) {
	_, err := os.Stat(s.Path(filename))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PostStore) Read(ctx context.Context, filename string) (string, error) {
	b, err := os.ReadFile(s.Path(filename))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Rewrite applies retitle.RewriteTitle to the post's file, keeping its
// permission bits.
func (s *PostStore) Rewrite(ctx context.Context, filename, title string) error {
	path := s.Path(filename)

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	doc := retitle.RewriteTitle(string(b), title)
	return os.WriteFile(path, []byte(doc), info.Mode().Perm())
}
