package holdstore

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/holdqueue/core"
)

const (
	logMsgSnapshotLoaded        = "snapshot loaded"
	logMsgSnapshotMissing       = "no snapshot found, starting with an empty state"
	logMsgTransactionCommitted  = "transaction committed"
	logMsgTransactionRolledBack = "transaction rolled back"
	logMsgEncodeFailed          = "failed to encode snapshot"
	logMsgPersistFailed         = "failed to persist snapshot"
	logAttrError                = "error"
	logAttrOperation            = "operation"
	logAttrTransactionID        = "transaction_id"
	logAttrDurationMS           = "duration_ms"
	logAttrSnapshotBytes        = "snapshot_bytes"
	logAttrItemCount            = "item_count"
	logAttrHoldCount            = "hold_count"
)

// TransactionFunc mutates the working copy of the state inside a transaction.
// Returning an error discards the working copy.
type TransactionFunc func(tx *core.State) error

// ViewFunc reads the last committed state.
type ViewFunc func(state core.StateReader) error

// Store owns the authoritative state. It is safe for concurrent use.
//
// Writers are serialized by mu. The committed state is published through an atomic pointer and
// is never mutated after publication, which lets readers proceed without locking.
type Store struct {
	persister        Persister
	mu               sync.Mutex
	committed        atomic.Pointer[core.State]
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewStore creates a Store and loads the last persisted snapshot, if there is one.
func NewStore(ctx context.Context, persister Persister, options ...Option) (*Store, error) {
	if persister == nil {
		return nil, ErrNilPersister
	}

	s := &Store{persister: persister}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	state, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	s.committed.Store(state)

	return s, nil
}

func (s *Store) load(ctx context.Context) (*core.State, error) {
	data, err := s.persister.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrLoadingSnapshotFailed, err)
	}

	if data == nil {
		s.logInfo(ctx, logMsgSnapshotMissing)
		return core.NewState(), nil
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}

	state, err := doc.ToState()
	if err != nil {
		return nil, err
	}

	s.logInfo(ctx, logMsgSnapshotLoaded,
		logAttrItemCount, len(doc.Items),
		logAttrHoldCount, len(doc.Holds),
		logAttrSnapshotBytes, len(data),
	)

	return state, nil
}

// RunInTransaction runs fn against a private copy of the committed state while holding the writer lock.
//
// If fn returns nil, the copy is encoded and handed to the Persister. Only after the Persister succeeded
// does the copy become the committed state; otherwise it is dropped and the committed state is unchanged.
// The returned error is fn's error, or it wraps ErrEncodingSnapshotFailed or ErrPersistingSnapshotFailed.
func (s *Store) RunInTransaction(ctx context.Context, fn TransactionFunc) error {
	if fn == nil {
		return ErrNilTransactionFunc
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	operation := GetOperation(ctx)
	transactionID := uuid.NewString()

	observer, ctx := s.startTransactionTracing(ctx, operation, transactionID)

	working := s.committed.Load().Clone()

	if err := fn(working); err != nil {
		s.recordRollback(ctx, operation, transactionID, time.Since(start), err)
		observer.finishError(statusRolledBack, time.Since(start))

		return err
	}

	data, err := EncodeDocument(DocumentFromState(working))
	if err != nil {
		s.logError(ctx, logMsgEncodeFailed, err, logAttrOperation, operation, logAttrTransactionID, transactionID)
		s.recordRollback(ctx, operation, transactionID, time.Since(start), err)
		observer.finishError(errorTypeEncode, time.Since(start))

		return err
	}

	if err = s.persist(ctx, operation, data); err != nil {
		s.logError(ctx, logMsgPersistFailed, err, logAttrOperation, operation, logAttrTransactionID, transactionID)
		s.recordRollback(ctx, operation, transactionID, time.Since(start), err)
		observer.finishError(errorTypePersist, time.Since(start))

		return errors.Join(ErrPersistingSnapshotFailed, err)
	}

	s.committed.Store(working)

	duration := time.Since(start)
	s.recordCommit(ctx, operation, transactionID, duration, len(data))
	observer.finishSuccess(len(data), duration)

	return nil
}

func (s *Store) persist(ctx context.Context, operation string, data []byte) error {
	ctx, span := s.startTraceSpan(ctx, spanNamePersist, map[string]string{
		spanAttrOperation: operation,
	})

	start := time.Now()
	err := s.persister.Save(ctx, data)
	duration := time.Since(start)

	if err != nil {
		s.recordDurationMetricsContext(ctx, metricPersistDuration, duration, operation, statusError)
		s.recordErrorMetricsContext(ctx, operation, errorTypePersist)
		s.finishTraceSpan(span, statusError, map[string]string{spanAttrErrorType: errorTypePersist})

		return err
	}

	s.recordDurationMetricsContext(ctx, metricPersistDuration, duration, operation, statusSuccess)
	s.finishTraceSpan(span, statusSuccess, nil)

	return nil
}

// View runs fn against the last committed state without taking the writer lock.
// The state must not be retained or type-asserted and mutated after fn returns.
func (s *Store) View(ctx context.Context, fn ViewFunc) error {
	if fn == nil {
		return ErrNilTransactionFunc
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(s.committed.Load())
}

// Current returns the last committed state as a read-only view.
func (s *Store) Current() core.StateReader {
	return s.committed.Load()
}
