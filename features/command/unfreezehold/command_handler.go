package unfreezehold

import (
	"context"

	"github.com/AntonStoeckl/holdqueue/assignment"
	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/holdstore"
	"github.com/AntonStoeckl/holdqueue/shell"
)

// CommandHandler unfreezes holds and attempts one assignment inside a Store transaction.
type CommandHandler struct {
	store        shell.RunsTransactions
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(store shell.RunsTransactions, opts ...Option) CommandHandler {
	handler := CommandHandler{store: store}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle unfreezes the hold, makes exactly one assignment attempt for its item, and reports both.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Result, shell.HandlerResult, error) {
	var result Result
	var assigned bool

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		return h.store.RunInTransaction(holdstore.WithOperation(retryCtx, operation), func(tx *core.State) error {
			hold, err := Decide(tx, command)
			if err != nil {
				return err
			}

			tx.PutHold(hold)

			decision, err := assignment.TryAssign(tx, hold.ItemID)
			if err != nil {
				return err
			}

			result = Result{}
			result.Hold, _ = tx.Hold(hold.ID)

			var holdID core.HoldID
			holdID, assigned = decision.AssignedTo()
			if assigned {
				result.AssignedTo = &holdID
			}

			return nil
		})
	}, h.retryOptions...)

	if err != nil {
		return Result{}, shell.NewErrorResult(retryMetrics), err
	}

	return result, shell.NewAssignmentResult(assigned, retryMetrics), nil
}
