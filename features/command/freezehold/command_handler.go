package freezehold

import (
	"context"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/holdstore"
	"github.com/AntonStoeckl/holdqueue/shell"
)

// CommandHandler freezes holds inside a Store transaction.
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

// Handle freezes the hold and returns it as committed.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Hold, shell.HandlerResult, error) {
	var frozen core.Hold

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		return h.store.RunInTransaction(holdstore.WithOperation(retryCtx, operation), func(tx *core.State) error {
			hold, err := Decide(tx, command)
			if err != nil {
				return err
			}

			tx.PutHold(hold)
			frozen = hold

			return nil
		})
	}, h.retryOptions...)

	if err != nil {
		return core.Hold{}, shell.NewErrorResult(retryMetrics), err
	}

	return frozen, shell.NewSuccessResult(retryMetrics), nil
}
