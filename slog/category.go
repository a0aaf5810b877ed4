package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/idscrape"
)

// Ensure LoggingCategoryLoader implements idscrape.CategoryLoader.
var _ idscrape.CategoryLoader = (*LoggingCategoryLoader)(nil)

// LoggingCategoryLoader wraps a CategoryLoader with debug logging.
type LoggingCategoryLoader struct {
	next   idscrape.CategoryLoader
	logger *slog.Logger
}

// NewLoggingCategoryLoader creates a new LoggingCategoryLoader.
func NewLoggingCategoryLoader(next idscrape.CategoryLoader, logger *slog.Logger) *LoggingCategoryLoader {
	return &LoggingCategoryLoader{next: next, logger: logger}
}

// LoadCategories delegates to the wrapped loader and logs the operation.
func (l *LoggingCategoryLoader) LoadCategories(path string) (table *idscrape.CategoryTable, err error) {
	defer func(begin time.Time) {
		count := 0
		if table != nil {
			count = table.Len()
		}
		l.logger.Debug("load categories",
			"path", path,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadCategories(path)
}
