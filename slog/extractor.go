package slog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	meshmcp "github.com/lukeylias/MeshMCP"
)

// Ensure LoggingExtractor implements meshmcp.Extractor.
var _ meshmcp.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-fetch logging.
type LoggingExtractor struct {
	next   meshmcp.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next meshmcp.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Fetch logs the key being extracted and delegates to the wrapped extractor.
func (e *LoggingExtractor) Fetch(ctx context.Context, key meshmcp.CacheKey) (value json.RawMessage, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extraction",
			"key", key.String(),
			"bytes", len(value),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Fetch(ctx, key)
}

// Close delegates to the wrapped extractor.
func (e *LoggingExtractor) Close() error {
	return e.next.Close()
}
