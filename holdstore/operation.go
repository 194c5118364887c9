package holdstore

import "context"

type contextKey string

// OperationKey is the context key used to label transactions in logs, metrics, and spans.
const OperationKey contextKey = "holdstore.operation"

const defaultOperation = "transaction"

// WithOperation returns a context that labels the next transaction with the given operation name.
//
// Example usage:
//
//	ctx = holdstore.WithOperation(ctx, "ReturnUnit")
//	err := store.RunInTransaction(ctx, fn)
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, OperationKey, operation)
}

// GetOperation extracts the operation name from the context, or "transaction" if none was set.
func GetOperation(ctx context.Context) string {
	if operation, ok := ctx.Value(OperationKey).(string); ok && operation != "" {
		return operation
	}

	return defaultOperation
}
