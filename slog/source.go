package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/idscrape"
)

// Ensure LoggingSource implements idscrape.Source.
var _ idscrape.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with debug logging.
type LoggingSource struct {
	next   idscrape.Source
	name   string
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource. name identifies the source
// (URL or file path) in log records.
func NewLoggingSource(next idscrape.Source, name string, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, name: name, logger: logger}
}

// Page delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Page(ctx context.Context) (page idscrape.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("load page",
			"source", s.name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Page(ctx)
}
