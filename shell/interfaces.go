package shell

import (
	"context"

	"github.com/AntonStoeckl/holdqueue/holdstore"
)

// RunsTransactions is the part of the Store used by command handlers.
type RunsTransactions interface {
	RunInTransaction(ctx context.Context, fn holdstore.TransactionFunc) error
}

// ViewsState is the part of the Store used by query handlers.
type ViewsState interface {
	View(ctx context.Context, fn holdstore.ViewFunc) error
}

// Command represents the contract for all command types.
// The CommandType method enables polymorphic handling and observability instrumentation.
type Command interface {
	CommandType() string
}

// Query represents the contract for all query types.
type Query interface {
	QueryType() string
}

// CoreCommandHandler defines the contract for components that process commands with pure business logic.
// Handlers run one Store transaction per attempt and report the business outcome and retry metadata
// in the HandlerResult. Observability is added from the outside by observable.CommandWrapper.
type CoreCommandHandler[C Command, R any] interface {
	Handle(ctx context.Context, command C) (R, HandlerResult, error)
}

// CoreQueryHandler defines the contract for components that read the committed state.
type CoreQueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
