// Package observability provides test doubles that capture logs, metrics, and tracing spans
// emitted by the holdstore and the command and query handlers.
//
// All spies are safe for concurrent use.
package observability
