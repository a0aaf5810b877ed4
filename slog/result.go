package slog

import (
	"log/slog"

	"github.com/fwojciec/idscrape"
)

// LogResult logs every value of r at info level, or a warning when r is empty.
func LogResult(logger *slog.Logger, r *idscrape.Result) {
	if r.Len() == 0 {
		logger.Warn("no data to display")
		return
	}
	for id, text := range r.All() {
		logger.Info("value", "id", id, "text", text)
	}
	if len(r.Missing) > 0 {
		logger.Debug("ids not found", "ids", r.Missing)
	}
}
