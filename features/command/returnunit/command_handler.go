package returnunit

import (
	"context"

	"github.com/AntonStoeckl/holdqueue/assignment"
	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/holdstore"
	"github.com/AntonStoeckl/holdqueue/shell"
)

// CommandHandler returns units and attempts one assignment inside a Store transaction.
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

// Handle returns one unit of the item and makes exactly one assignment attempt.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Result, shell.HandlerResult, error) {
	var result Result
	var assigned bool

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		return h.store.RunInTransaction(holdstore.WithOperation(retryCtx, operation), func(tx *core.State) error {
			item, ok := tx.Item(command.ItemID)
			if !ok {
				return core.ErrItemNotFound
			}

			tx.PutItem(item.WithUnitReturned())

			decision, err := assignment.TryAssign(tx, item.ID)
			if err != nil {
				return err
			}

			result = Result{}
			item, _ = tx.Item(item.ID)
			result.UnitsAvailable = item.UnitsAvailable

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
