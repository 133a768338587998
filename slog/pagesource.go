package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pwalen/vitalwiki"
)

// Ensure LoggingPageSource implements vitalwiki.PageSource.
var _ vitalwiki.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with debug logging.
type LoggingPageSource struct {
	next   vitalwiki.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next vitalwiki.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// Page delegates to the wrapped source and logs the operation.
func (s *LoggingPageSource) Page(ctx context.Context, title string) (page *vitalwiki.ArticlePage, err error) {
	defer func(begin time.Time) {
		size := 0
		if page != nil {
			size = len(page.HTML)
		}
		s.logger.Info("page fetch",
			"title", title,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Page(ctx, title)
}
