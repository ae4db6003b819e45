package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/retitle"
)

// Ensure LoggingPostStore implements retitle.PostStore.
var _ retitle.PostStore = (*LoggingPostStore)(nil)

// LoggingPostStore wraps a PostStore with debug logging.
type LoggingPostStore struct {
	next   retitle.PostStore
	logger *slog.Logger
}

// NewLoggingPostStore creates a new LoggingPostStore.
func NewLoggingPostStore(next retitle.PostStore, logger *slog.Logger) *LoggingPostStore {
	return &LoggingPostStore{next: next, logger: logger}
}

// Exists delegates to the wrapped store and logs missing files.
func (s *LoggingPostStore) Exists(ctx context.Context, filename string) (ok bool, err error) {
	defer func() {
		if !ok || err != nil {
			s.logger.Info("post missing",
				"filename", filename,
				"err", err,
			)
		}
	}()
	return s.next.Exists(ctx, filename)
}

// Read delegates to the wrapped store and logs the read.
func (s *LoggingPostStore) Read(ctx context.Context, filename string) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read post",
			"filename", filename,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(ctx, filename)
}

// Rewrite delegates to the wrapped store and logs the rewrite.
func (s *LoggingPostStore) Rewrite(ctx context.Context, filename, title string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("rewrite post",
			"filename", filename,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rewrite(ctx, filename, title)
}
