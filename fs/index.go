package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"

	"github.com/fwojciec/retitle"
)

// Ensure IndexStore implements retitle.PostIndex at compile time.
var _ retitle.PostIndex = (*IndexStore)(nil)

// IndexStore implements retitle.PostIndex over a JSON array file.
// Save writes to a temporary file next to the index and renames it into
// place, so readers never observe a partially written index. An existing
// index keeps its permission bits.
type IndexStore struct {
	path string
}

// NewIndexStore creates a new IndexStore for the index file at path.
func NewIndexStore(path string) *IndexStore {
	return &IndexStore{path: path}
}

func (s *IndexStore) tempPath() string {
	return s.path + ".tmp"
}

func (s *IndexStore) Load(ctx context.Context) ([]*retitle.Post, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var posts []*retitle.Post
	if err := json.Unmarshal(b, &posts); err != nil {
		return nil, retitle.Errorf(retitle.EINVALID, "invalid index %s: %v", s.path, err)
	}
	return posts, nil
}

func (s *IndexStore) Save(ctx context.Context, posts []*retitle.Post) error {
	b, err := FormatIndex(posts)
	if err != nil {
		return err
	}

	perm := os.FileMode(0644)
	if info, err := os.Stat(s.path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(s.tempPath(), b, perm); err != nil {
		_ = os.Remove(s.tempPath())
		return err
	}

	if err := os.Rename(s.tempPath(), s.path); err != nil {
		_ = os.Remove(s.tempPath())
		return err
	}

	return nil
}

// FormatIndex encodes posts as a JSON array indented by two spaces.
// Characters significant in HTML are written unescaped.
func FormatIndex(posts []*retitle.Post) ([]byte, error) {
	if posts == nil {
		posts = []*retitle.Post{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(posts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
