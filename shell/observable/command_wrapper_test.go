package observable_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/holdstore"
	"github.com/AntonStoeckl/holdqueue/shell"
	"github.com/AntonStoeckl/holdqueue/shell/observable"
	"github.com/AntonStoeckl/holdqueue/testutil/observability"
)

type testCommand struct{}

func (testCommand) CommandType() string { return "TestCommand" }

type handlerStub struct {
	output string
	result shell.HandlerResult
	err    error
	calls  int
}

func (h *handlerStub) Handle(_ context.Context, _ testCommand) (string, shell.HandlerResult, error) {
	h.calls++
	return h.output, h.result, h.err
}

func newTestWrapper(
	t *testing.T,
	handler *handlerStub,
	metrics *observability.MetricsCollectorSpy,
	tracing *observability.TracingCollectorSpy,
	logs *observability.LogHandlerSpy,
) *observable.CommandWrapper[testCommand, string] {
	t.Helper()

	wrapper, err := observable.NewCommandWrapper[testCommand, string](
		handler,
		observable.WithCommandMetrics[testCommand, string](metrics),
		observable.WithCommandTracing[testCommand, string](tracing),
		observable.WithCommandContextualLogging[testCommand, string](slog.New(logs)),
	)
	require.NoError(t, err)

	return wrapper
}

func Test_CommandWrapper_Handle_Success(t *testing.T) {
	// arrange
	handler := &handlerStub{output: "ok", result: shell.HandlerResult{Outcome: shell.StatusSuccess, RetryAttempts: 1}}
	metrics := observability.NewMetricsCollectorSpy()
	tracing := observability.NewTracingCollectorSpy()
	logs := observability.NewLogHandlerSpy(false)
	wrapper := newTestWrapper(t, handler, metrics, tracing, logs)

	// act
	output, result, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, "ok", output)
	assert.Equal(t, 1, result.RetryAttempts)
	assert.Equal(t, 1, handler.calls)

	labels := shell.BuildCommandLabels("TestCommand", shell.StatusSuccess)
	assert.Equal(t, 1, metrics.CountCounterRecords(shell.CommandHandlerCallsMetric, labels))
	assert.True(t, metrics.HasDurationRecord(shell.CommandHandlerDurationMetric, labels))
	assert.True(t, tracing.HasFinishedSpan(shell.SpanNameCommandHandle, shell.StatusSuccess))
	assert.True(t, logs.HasLog(slog.LevelDebug, shell.LogMsgCommandStarted))
	assert.True(t, logs.HasLogWithAttr(slog.LevelInfo, shell.LogMsgCommandCompleted, shell.LogAttrBusinessOutcome, shell.StatusSuccess))
}

func Test_CommandWrapper_Handle_RecordsAssignmentOutcome(t *testing.T) {
	// arrange
	handler := &handlerStub{result: shell.HandlerResult{Outcome: shell.StatusNoAssignment, RetryAttempts: 1}}
	metrics := observability.NewMetricsCollectorSpy()
	tracing := observability.NewTracingCollectorSpy()
	wrapper := newTestWrapper(t, handler, metrics, tracing, observability.NewLogHandlerSpy(false))

	// act
	_, _, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.CountCounterRecords(
		shell.CommandHandlerAssignmentsMetric,
		shell.BuildCommandLabels("TestCommand", shell.StatusNoAssignment),
	))
	assert.True(t, tracing.HasFinishedSpan(shell.SpanNameCommandHandle, shell.StatusNoAssignment))
}

func Test_CommandWrapper_Handle_Rejection(t *testing.T) {
	// arrange
	handler := &handlerStub{err: core.ErrActiveHoldExists, result: shell.HandlerResult{RetryAttempts: 1}}
	metrics := observability.NewMetricsCollectorSpy()
	tracing := observability.NewTracingCollectorSpy()
	logs := observability.NewLogHandlerSpy(false)
	wrapper := newTestWrapper(t, handler, metrics, tracing, logs)

	// act
	_, _, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	assert.ErrorIs(t, err, core.ErrActiveHoldExists)
	assert.Equal(t, 1, metrics.CountCounterRecords(
		shell.CommandHandlerRejectionsMetric,
		shell.BuildCommandLabels("TestCommand", shell.StatusConflict),
	))
	assert.True(t, tracing.HasFinishedSpan(shell.SpanNameCommandHandle, shell.StatusConflict))
	assert.True(t, logs.HasLog(slog.LevelWarn, shell.LogMsgCommandRejected))
	assert.False(t, logs.HasLog(slog.LevelError, shell.LogMsgCommandFailed))
}

func Test_CommandWrapper_Handle_PersistFailureWithRetries(t *testing.T) {
	// arrange
	handler := &handlerStub{
		err: errors.Join(holdstore.ErrPersistingSnapshotFailed, errors.New("disk full")),
		result: shell.HandlerResult{
			RetryAttempts:    3,
			LastErrorType:    "persist_failed",
			RetriesExhausted: true,
		},
	}
	metrics := observability.NewMetricsCollectorSpy()
	tracing := observability.NewTracingCollectorSpy()
	logs := observability.NewLogHandlerSpy(false)
	wrapper := newTestWrapper(t, handler, metrics, tracing, logs)

	// act
	_, _, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	assert.ErrorIs(t, err, holdstore.ErrPersistingSnapshotFailed)
	assert.Equal(t, 1, metrics.CountCounterRecords(shell.CommandHandlerPersistFailuresMetric, nil))
	assert.Equal(t, 1, metrics.CountCounterRecords(shell.CommandHandlerRetriesMetric, nil))
	assert.Equal(t, 1, metrics.CountCounterRecords(shell.CommandHandlerMaxRetriesReachedMetric, nil))
	assert.True(t, tracing.HasFinishedSpan(shell.SpanNameCommandHandle, shell.StatusPersistFailed))
	assert.True(t, logs.HasLog(slog.LevelError, shell.LogMsgCommandFailed))
}

func Test_CommandWrapper_Handle_Canceled(t *testing.T) {
	// arrange
	handler := &handlerStub{err: context.Canceled}
	metrics := observability.NewMetricsCollectorSpy()
	wrapper := newTestWrapper(t, handler, metrics, observability.NewTracingCollectorSpy(), observability.NewLogHandlerSpy(false))

	// act
	_, _, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, metrics.CountCounterRecords(shell.CommandHandlerCanceledMetric, nil))
}

func Test_CommandWrapper_Handle_WithoutObservability(t *testing.T) {
	// arrange
	handler := &handlerStub{output: "plain"}
	wrapper, err := observable.NewCommandWrapper[testCommand, string](handler)
	require.NoError(t, err)

	// act
	output, _, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "plain", output)
}

func Test_CommandWrapper_Handle_FallsBackToBasicLogger(t *testing.T) {
	// arrange
	handler := &handlerStub{}
	logs := observability.NewLogHandlerSpy(false)
	wrapper, err := observable.NewCommandWrapper[testCommand, string](
		handler,
		observable.WithCommandLogging[testCommand, string](slog.New(logs)),
	)
	require.NoError(t, err)

	// act
	_, _, err = wrapper.Handle(context.Background(), testCommand{})

	// assert
	require.NoError(t, err)
	assert.True(t, logs.HasLogWithAttr(slog.LevelInfo, shell.LogMsgCommandCompleted, shell.LogAttrBusinessOutcome, shell.StatusSuccess))
}
