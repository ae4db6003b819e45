package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/retitle"
)

// Ensure LoggingTitleExtractor implements retitle.TitleExtractor.
var _ retitle.TitleExtractor = (*LoggingTitleExtractor)(nil)

// LoggingTitleExtractor wraps a TitleExtractor with debug logging.
type LoggingTitleExtractor struct {
	next   retitle.TitleExtractor
	logger *slog.Logger
}

// NewLoggingTitleExtractor creates a new LoggingTitleExtractor.
func NewLoggingTitleExtractor(next retitle.TitleExtractor, logger *slog.Logger) *LoggingTitleExtractor {
	return &LoggingTitleExtractor{next: next, logger: logger}
}

// ExtractTitle delegates to the wrapped extractor and logs the result.
func (e *LoggingTitleExtractor) ExtractTitle(html, originURL string) (title string) {
	defer func(begin time.Time) {
		e.logger.Info("extract title",
			"url", originURL,
			"title", title,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.ExtractTitle(html, originURL)
}
