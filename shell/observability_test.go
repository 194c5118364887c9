package shell_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/holdstore"
	"github.com/AntonStoeckl/holdqueue/shell"
	"github.com/AntonStoeckl/holdqueue/testutil/observability"
)

func Test_ClassifyError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: shell.StatusSuccess},
		{name: "validation", err: core.ErrInvalidRequesterKey, expected: shell.StatusValidation},
		{name: "not found", err: core.ErrHoldNotFound, expected: shell.StatusNotFound},
		{name: "forbidden", err: core.ErrNotHoldOwner, expected: shell.StatusForbidden},
		{name: "conflict", err: core.ErrActiveHoldExists, expected: shell.StatusConflict},
		{
			name:     "persist failed",
			err:      errors.Join(holdstore.ErrPersistingSnapshotFailed, errors.New("disk full")),
			expected: shell.StatusPersistFailed,
		},
		{name: "canceled", err: fmt.Errorf("wrapped: %w", context.Canceled), expected: shell.StatusCanceled},
		{name: "timeout", err: context.DeadlineExceeded, expected: shell.StatusTimeout},
		{name: "other", err: errors.New("boom"), expected: shell.StatusError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, shell.ClassifyError(tc.err))
		})
	}
}

func Test_RecordCommandMetrics_CountsAssignmentsSeparately(t *testing.T) {
	// arrange
	metrics := observability.NewMetricsCollectorSpy()

	// act
	shell.RecordCommandMetrics(context.Background(), metrics, "ReturnUnit", shell.StatusAssigned, time.Millisecond)

	// assert
	labels := shell.BuildCommandLabels("ReturnUnit", shell.StatusAssigned)
	assert.True(t, metrics.HasDurationRecord(shell.CommandHandlerDurationMetric, labels))
	assert.Equal(t, 1, metrics.CountCounterRecords(shell.CommandHandlerCallsMetric, labels))
	assert.Equal(t, 1, metrics.CountCounterRecords(shell.CommandHandlerAssignmentsMetric, labels))
	assert.Equal(t, 0, metrics.CountCounterRecords(shell.CommandHandlerRejectionsMetric, nil))
}

func Test_RecordCommandMetrics_CountsRejections(t *testing.T) {
	// arrange
	metrics := observability.NewMetricsCollectorSpy()

	// act
	shell.RecordCommandMetrics(context.Background(), metrics, "PlaceHold", shell.StatusConflict, time.Millisecond)

	// assert
	assert.Equal(t, 1, metrics.CountCounterRecords(
		shell.CommandHandlerRejectionsMetric,
		shell.BuildCommandLabels("PlaceHold", shell.StatusConflict),
	))
	assert.Equal(t, 0, metrics.CountCounterRecords(shell.CommandHandlerPersistFailuresMetric, nil))
}

func Test_RecordCommandMetrics_NilCollectorIsIgnored(t *testing.T) {
	assert.NotPanics(t, func() {
		shell.RecordCommandMetrics(context.Background(), nil, "PlaceHold", shell.StatusSuccess, time.Millisecond)
		shell.RecordQueryMetrics(context.Background(), nil, "ItemQueue", shell.StatusSuccess, time.Millisecond)
		shell.RecordRetryMetrics(context.Background(), nil, "PlaceHold", shell.HandlerResult{RetryAttempts: 3})
	})
}

func Test_RecordRetryMetrics(t *testing.T) {
	// arrange
	metrics := observability.NewMetricsCollectorSpy()
	result := shell.HandlerResult{
		RetryAttempts:    3,
		TotalRetryDelay:  30 * time.Millisecond,
		LastErrorType:    "persist_failed",
		RetriesExhausted: true,
	}

	// act
	shell.RecordRetryMetrics(context.Background(), metrics, "ReturnUnit", result)

	// assert
	assert.Equal(t, 1, metrics.CountCounterRecords(
		shell.CommandHandlerRetriesMetric,
		shell.BuildRetryLabels("ReturnUnit", 2, "persist_failed"),
	))
	assert.True(t, metrics.HasDurationRecord(shell.CommandHandlerRetryDelayMetric, nil))
	assert.Equal(t, 1, metrics.CountCounterRecords(shell.CommandHandlerMaxRetriesReachedMetric, nil))
}

func Test_NewAssignmentResult(t *testing.T) {
	retryMetrics := shell.RetryMetrics{Attempts: 2, TotalDelay: time.Millisecond, LastErrorType: "none"}

	assigned := shell.NewAssignmentResult(true, retryMetrics)
	unassigned := shell.NewAssignmentResult(false, retryMetrics)

	assert.Equal(t, shell.StatusAssigned, assigned.Outcome)
	assert.Equal(t, shell.StatusNoAssignment, unassigned.Outcome)
	assert.Equal(t, 2, assigned.RetryAttempts)
	assert.Equal(t, time.Millisecond, assigned.TotalRetryDelay)
}
