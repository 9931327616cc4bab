// Package slog provides log/slog decorators for zengin services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/zengin"
)

// Ensure LoggingSource implements zengin.Source.
var _ zengin.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with logging of every index read.
type LoggingSource struct {
	next   zengin.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next zengin.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Banks delegates to the wrapped source and logs the read at info level.
func (s *LoggingSource) Banks(ctx context.Context) (banks map[string]*zengin.Bank, err error) {
	defer func(begin time.Time) {
		s.logger.Info("bank index read",
			"count", len(banks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Banks(ctx)
}

// Branches delegates to the wrapped source and logs the read at debug level,
// since a full dataset has one branch index per bank. Failures are logged as
// warnings.
func (s *LoggingSource) Branches(ctx context.Context, bankCode string) (branches map[string]*zengin.Branch, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "branch index read",
			"bank", bankCode,
			"count", len(branches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Branches(ctx, bankCode)
}
