package holdstore

import (
	"context"
	"fmt"
	"math"
	"time"
)

const (
	metricTransactionDuration = "holdstore_transaction_duration_seconds"
	metricTransactions        = "holdstore_transactions_total"
	metricPersistDuration     = "holdstore_persist_duration_seconds"
	metricErrors              = "holdstore_errors_total"
	metricSnapshotSize        = "holdstore_snapshot_size_bytes"

	spanNameTransaction = "holdstore.transaction"
	spanNamePersist     = "holdstore.persist"

	spanAttrOperation     = "operation"
	spanAttrTransactionID = "transaction_id"
	spanAttrErrorType     = "error_type"
	spanAttrDurationMS    = "duration_ms"
	spanAttrSnapshotBytes = "snapshot_bytes"

	statusSuccess    = "success"
	statusError      = "error"
	statusCommitted  = "committed"
	statusRolledBack = "rolled_back"

	errorTypeEncode  = "encode_error"
	errorTypePersist = "persist_error"
)

// logDebug logs debug information if a logger is configured, preferring the contextual logger.
func (s *Store) logDebug(ctx context.Context, msg string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, msg, args...)
		return
	}

	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

// logInfo logs operational information if a logger is configured, preferring the contextual logger.
func (s *Store) logInfo(ctx context.Context, msg string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, msg, args...)
		return
	}

	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

// logWarn logs warnings if a logger is configured, preferring the contextual logger.
func (s *Store) logWarn(ctx context.Context, msg string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, msg, args...)
		return
	}

	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

// logError logs error information if a logger is configured, preferring the contextual logger.
func (s *Store) logError(ctx context.Context, msg string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, msg, allArgs...)
		return
	}

	if s.logger != nil {
		s.logger.Error(msg, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func (s *Store) recordCommit(ctx context.Context, operation, transactionID string, duration time.Duration, snapshotBytes int) {
	s.logDebug(ctx, logMsgTransactionCommitted,
		logAttrOperation, operation,
		logAttrTransactionID, transactionID,
		logAttrDurationMS, toMilliseconds(duration),
		logAttrSnapshotBytes, snapshotBytes,
	)

	s.recordDurationMetricsContext(ctx, metricTransactionDuration, duration, operation, statusCommitted)
	s.incrementCounterContext(ctx, metricTransactions, operation, statusCommitted)
	s.recordValueMetricsContext(ctx, metricSnapshotSize, float64(snapshotBytes), operation, statusCommitted)
}

func (s *Store) recordRollback(ctx context.Context, operation, transactionID string, duration time.Duration, err error) {
	s.logWarn(ctx, logMsgTransactionRolledBack,
		logAttrOperation, operation,
		logAttrTransactionID, transactionID,
		logAttrDurationMS, toMilliseconds(duration),
		logAttrError, err.Error(),
	)

	s.recordDurationMetricsContext(ctx, metricTransactionDuration, duration, operation, statusRolledBack)
	s.incrementCounterContext(ctx, metricTransactions, operation, statusRolledBack)
}

// recordErrorMetricsContext records error metrics with context if the collector supports it.
func (s *Store) recordErrorMetricsContext(ctx context.Context, operation, errorType string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		"status":          statusError,
		spanAttrErrorType: errorType,
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricErrors, labels)
	} else {
		s.metricsCollector.IncrementCounter(metricErrors, labels)
	}
}

// incrementCounterContext increments a counter with context if the collector supports it.
func (s *Store) incrementCounterContext(ctx context.Context, metricName, operation, status string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		"status":          status,
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricName, labels)
	} else {
		s.metricsCollector.IncrementCounter(metricName, labels)
	}
}

// recordDurationMetricsContext records duration metrics with context if the collector supports it.
func (s *Store) recordDurationMetricsContext(
	ctx context.Context,
	metricName string,
	duration time.Duration,
	operation, status string,
) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		"status":          status,
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricName, duration, labels)
	} else {
		s.metricsCollector.RecordDuration(metricName, duration, labels)
	}
}

// recordValueMetricsContext records value metrics with context if the collector supports it.
func (s *Store) recordValueMetricsContext(
	ctx context.Context,
	metricName string,
	value float64,
	operation, status string,
) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		"status":          status,
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metricName, value, labels)
	} else {
		s.metricsCollector.RecordValue(metricName, value, labels)
	}
}

// startTraceSpan starts a tracing span if the tracing collector is configured.
func (s *Store) startTraceSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, SpanContext) {
	if s.tracingCollector != nil {
		return s.tracingCollector.StartSpan(ctx, name, attrs)
	}

	return ctx, nil
}

// finishTraceSpan finishes a tracing span if the tracing collector is configured.
func (s *Store) finishTraceSpan(spanCtx SpanContext, status string, attrs map[string]string) {
	if s.tracingCollector != nil && spanCtx != nil {
		s.tracingCollector.FinishSpan(spanCtx, status, attrs)
	}
}

// === Tracing Observer Pattern ===

// transactionTracingObserver encapsulates tracing span lifecycle management for transactions.
type transactionTracingObserver struct {
	s    *Store
	span SpanContext
}

// startTransactionTracing creates a new tracing observer for a transaction.
func (s *Store) startTransactionTracing(
	ctx context.Context,
	operation string,
	transactionID string,
) (*transactionTracingObserver, context.Context) {
	newCtx, span := s.startTraceSpan(ctx, spanNameTransaction, map[string]string{
		spanAttrOperation:     operation,
		spanAttrTransactionID: transactionID,
	})

	return &transactionTracingObserver{s: s, span: span}, newCtx
}

// finishSuccess completes the transaction span for committed transactions.
func (o *transactionTracingObserver) finishSuccess(snapshotBytes int, duration time.Duration) {
	if o.span == nil {
		return
	}

	o.span.SetStatus(statusSuccess)
	o.span.AddAttribute(spanAttrSnapshotBytes, fmt.Sprintf("%d", snapshotBytes))
	o.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", float64(duration.Nanoseconds())/1e6))

	o.s.finishTraceSpan(o.span, statusSuccess, map[string]string{
		spanAttrSnapshotBytes: fmt.Sprintf("%d", snapshotBytes),
	})
}

// finishError completes the transaction span with error details.
func (o *transactionTracingObserver) finishError(errorType string, duration time.Duration) {
	if o.span == nil {
		return
	}

	o.span.SetStatus(statusError)
	o.span.AddAttribute(spanAttrErrorType, errorType)
	o.span.AddAttribute(spanAttrDurationMS, fmt.Sprintf("%.2f", float64(duration.Nanoseconds())/1e6))

	o.s.finishTraceSpan(o.span, statusError, map[string]string{spanAttrErrorType: errorType})
}
