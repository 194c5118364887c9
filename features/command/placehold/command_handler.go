package placehold

import (
	"context"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/holdstore"
	"github.com/AntonStoeckl/holdqueue/shell"
)

// CommandHandler places holds inside a Store transaction.
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

// Handle places the hold and returns its position and id.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Result, shell.HandlerResult, error) {
	var result Result

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		return h.store.RunInTransaction(holdstore.WithOperation(retryCtx, operation), func(tx *core.State) error {
			if err := Decide(tx, command); err != nil {
				return err
			}

			hold := tx.AddHold(command.ItemID, command.RequesterKey)
			result = Result{Position: hold.Position, HoldID: hold.ID}

			return nil
		})
	}, h.retryOptions...)

	if err != nil {
		return Result{}, shell.NewErrorResult(retryMetrics), err
	}

	return result, shell.NewSuccessResult(retryMetrics), nil
}
