package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/contacts"
)

// Ensure LoggingRunService implements contacts.RunService.
var _ contacts.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with logging.
type LoggingRunService struct {
	next   contacts.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next contacts.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the operation.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *contacts.Run, content string) (err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.ErrorContext(ctx, "record run",
				"url", run.SourceURL,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.InfoContext(ctx, "record run",
			"id", run.ID,
			"url", run.SourceURL,
			"hash", run.ContentHash,
			"found", run.Found,
			"inserted", run.Inserted,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run, content)
}

// FindRuns delegates to the wrapped service.
func (s *LoggingRunService) FindRuns(ctx context.Context, filter contacts.RunFilter) (runs []*contacts.Run, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.ErrorContext(ctx, "find runs", "duration", time.Since(begin), "err", err)
		}
	}(time.Now())
	return s.next.FindRuns(ctx, filter)
}
