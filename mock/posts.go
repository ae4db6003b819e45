package mock

import (
	"context"

	"github.com/fwojciec/retitle"
)

var _ retitle.PostStore = (*PostStore)(nil)

// PostStore is a mock implementation of retitle.PostStore.
type PostStore struct {
	ExistsFn  func(ctx context.Context, filename string) (bool, error)
	ReadFn    func(ctx context.Context, filename string) (string, error)
	RewriteFn func(ctx context.Context, filename, title string) error
}

func (s *PostStore) Exists(ctx context.Context, filename string) (bool, error) {
	return s.ExistsFn(ctx, filename)
}

func (s *PostStore) Read(ctx context.Context, filename string) (string, error) {
	return s.ReadFn(ctx, filename)
}

func (s *PostStore) Rewrite(ctx context.Context, filename, title string) error {
	return s.RewriteFn(ctx, filename, title)
}
