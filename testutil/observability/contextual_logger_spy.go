package observability

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/holdqueue/holdstore"
)

// ContextualLogRecord is one captured contextual log call.
type ContextualLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// ContextualLoggerSpy captures calls made through the holdstore.ContextualLogger interface.
type ContextualLoggerSpy struct {
	mu      sync.Mutex
	records []ContextualLogRecord
}

// NewContextualLoggerSpy creates an empty ContextualLoggerSpy.
func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, ContextualLogRecord{
		Level:   level,
		Message: msg,
		Args:    append([]any(nil), args...),
		Context: ctx,
	})
}

// Records returns a copy of all captured calls in call order.
func (s *ContextualLoggerSpy) Records() []ContextualLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]ContextualLogRecord(nil), s.records...)
}

// HasLog reports whether a call with the given level and message was captured.
func (s *ContextualLoggerSpy) HasLog(level, message string) bool {
	return s.find(level, message) != nil
}

// ArgValue returns the value following key in the args of the first matching call.
func (s *ContextualLoggerSpy) ArgValue(level, message, key string) (any, bool) {
	record := s.find(level, message)
	if record == nil {
		return nil, false
	}

	for i := 0; i+1 < len(record.Args); i += 2 {
		if k, ok := record.Args[i].(string); ok && k == key {
			return record.Args[i+1], true
		}
	}

	return nil, false
}

func (s *ContextualLoggerSpy) find(level, message string) *ContextualLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].Level == level && s.records[i].Message == message {
			record := s.records[i]
			return &record
		}
	}

	return nil
}

var _ holdstore.ContextualLogger = (*ContextualLoggerSpy)(nil)
