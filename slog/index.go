package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/retitle"
)

// Ensure LoggingPostIndex implements retitle.PostIndex.
var _ retitle.PostIndex = (*LoggingPostIndex)(nil)

// LoggingPostIndex wraps a PostIndex with debug logging.
type LoggingPostIndex struct {
	next   retitle.PostIndex
	logger *slog.Logger
}

// NewLoggingPostIndex creates a new LoggingPostIndex.
func NewLoggingPostIndex(next retitle.PostIndex, logger *slog.Logger) *LoggingPostIndex {
	return &LoggingPostIndex{next: next, logger: logger}
}

// Load delegates to the wrapped index and logs the operation.
func (i *LoggingPostIndex) Load(ctx context.Context) (posts []*retitle.Post, err error) {
	defer func(begin time.Time) {
		i.logger.Info("load index",
			"count", len(posts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Load(ctx)
}

// Save delegates to the wrapped index and logs the operation.
func (i *LoggingPostIndex) Save(ctx context.Context, posts []*retitle.Post) (err error) {
	defer func(begin time.Time) {
		i.logger.Info("save index",
			"count", len(posts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Save(ctx, posts)
}
