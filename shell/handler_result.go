package shell

import "time"

// HandlerResult represents the outcome of a command handler execution.
// It captures the business outcome and execution metadata (retry information)
// without coupling the handler to specific observability implementations.
type HandlerResult struct {
	// Outcome is the business outcome: StatusSuccess, StatusAssigned, or StatusNoAssignment.
	Outcome string

	// RetryAttempts is the total number of attempts made (1 for no retries, 2+ for retries).
	RetryAttempts int

	// TotalRetryDelay is the cumulative time spent in retry backoff delays.
	TotalRetryDelay time.Duration

	// LastErrorType describes the type of the final error encountered during retries.
	// Values: "none" (success), "persist_failed", "context_canceled", "context_deadline_exceeded", "other"
	LastErrorType string

	// RetriesExhausted indicates whether max retry attempts were reached with a retryable error.
	RetriesExhausted bool
}

// NewSuccessResult creates a HandlerResult for operations that changed state without an assignment attempt.
func NewSuccessResult(retryMetrics RetryMetrics) HandlerResult {
	return newResult(StatusSuccess, retryMetrics)
}

// NewAssignmentResult creates a HandlerResult for operations that attempted exactly one assignment.
func NewAssignmentResult(assigned bool, retryMetrics RetryMetrics) HandlerResult {
	if assigned {
		return newResult(StatusAssigned, retryMetrics)
	}

	return newResult(StatusNoAssignment, retryMetrics)
}

// NewErrorResult creates a HandlerResult for failed operations.
// This is used when the handler returns an error but still wants to report retry metadata.
func NewErrorResult(retryMetrics RetryMetrics) HandlerResult {
	return newResult("", retryMetrics)
}

func newResult(outcome string, retryMetrics RetryMetrics) HandlerResult {
	return HandlerResult{
		Outcome:          outcome,
		RetryAttempts:    retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}
