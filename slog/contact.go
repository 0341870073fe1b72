package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/contacts"
)

// Ensure LoggingContactService implements contacts.ContactService.
var _ contacts.ContactService = (*LoggingContactService)(nil)

// LoggingContactService wraps a ContactService with logging.
// Storage failures are logged at error level and returned unchanged.
type LoggingContactService struct {
	next   contacts.ContactService
	logger *slog.Logger
}

// NewLoggingContactService creates a new LoggingContactService.
func NewLoggingContactService(next contacts.ContactService, logger *slog.Logger) *LoggingContactService {
	return &LoggingContactService{next: next, logger: logger}
}

// Initialize delegates to the wrapped service and logs the operation.
func (s *LoggingContactService) Initialize(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "initialize storage",
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Initialize(ctx)
}

// SaveContacts delegates to the wrapped service and logs the operation.
func (s *LoggingContactService) SaveContacts(ctx context.Context, list []*contacts.Contact) (inserted int, err error) {
	defer func(begin time.Time) {
		args := []any{"count", len(list), "duration", time.Since(begin)}
		if err == nil {
			args = append(args, "inserted", inserted, "skipped", len(list)-inserted)
		}
		s.log(ctx, err, "save contacts", args...)
	}(time.Now())
	return s.next.SaveContacts(ctx, list)
}

// FindContacts delegates to the wrapped service and logs the operation.
func (s *LoggingContactService) FindContacts(ctx context.Context, filter contacts.ContactFilter) (list []*contacts.Contact, err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "find contacts",
			"count", len(list),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindContacts(ctx, filter)
}

func (s *LoggingContactService) log(ctx context.Context, err error, msg string, args ...any) {
	if err != nil {
		s.logger.ErrorContext(ctx, msg, append(args, "err", err)...)
		return
	}
	s.logger.InfoContext(ctx, msg, args...)
}
