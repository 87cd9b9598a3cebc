// Package slog provides logging decorators for cdpchat services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cdpsupport/cdpchat"
)

// Ensure LoggingAnswerer implements cdpchat.Answerer.
var _ cdpchat.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer with per-question logging.
type LoggingAnswerer struct {
	next   cdpchat.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next cdpchat.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// Answer delegates to the wrapped answerer and logs the outcome.
func (a *LoggingAnswerer) Answer(ctx context.Context, question string) (result *cdpchat.QueryResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs, "kind", result.Kind)
			if len(result.Query.Platforms) > 0 {
				attrs = append(attrs, "platforms", result.Query.Platforms)
			}
		}
		a.logger.Info("question answered", attrs...)
	}(time.Now())
	return a.next.Answer(ctx, question)
}
