package createitem

import (
	"context"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/holdstore"
	"github.com/AntonStoeckl/holdqueue/shell"
)

// CommandHandler creates items inside a Store transaction.
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

// Handle creates the item and returns it as committed.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Item, shell.HandlerResult, error) {
	var created core.Item

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		return h.store.RunInTransaction(holdstore.WithOperation(retryCtx, operation), func(tx *core.State) error {
			created = tx.AddItem(command.Title, command.UnitsTotal)
			return nil
		})
	}, h.retryOptions...)

	if err != nil {
		return core.Item{}, shell.NewErrorResult(retryMetrics), err
	}

	return created, shell.NewSuccessResult(retryMetrics), nil
}
