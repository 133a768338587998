// Package slog provides logging decorators for the upstream sources.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pwalen/vitalwiki"
)

// Ensure LoggingLinkSource implements vitalwiki.LinkSource.
var _ vitalwiki.LinkSource = (*LoggingLinkSource)(nil)

// LoggingLinkSource wraps a LinkSource with debug logging.
type LoggingLinkSource struct {
	next   vitalwiki.LinkSource
	logger *slog.Logger
}

// NewLoggingLinkSource creates a new LoggingLinkSource.
func NewLoggingLinkSource(next vitalwiki.LinkSource, logger *slog.Logger) *LoggingLinkSource {
	return &LoggingLinkSource{next: next, logger: logger}
}

// Links delegates to the wrapped source and logs the operation.
func (s *LoggingLinkSource) Links(ctx context.Context, listingPage string) (links []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("listing fetch",
			"page", listingPage,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Links(ctx, listingPage)
}
