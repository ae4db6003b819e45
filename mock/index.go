package mock

import (
	"context"

	"github.com/fwojciec/retitle"
)

var _ retitle.PostIndex = (*PostIndex)(nil)

// PostIndex is a mock implementation of retitle.PostIndex.
type PostIndex struct {
	LoadFn func(ctx context.Context) ([]*retitle.Post, error)
	SaveFn func(ctx context.Context, posts []*retitle.Post) error
}

func (i *PostIndex) Load(ctx context.Context) ([]*retitle.Post, error) {
	return i.LoadFn(ctx)
}

func (i *PostIndex) Save(ctx context.Context, posts []*retitle.Post) error {
	return i.SaveFn(ctx, posts)
}
