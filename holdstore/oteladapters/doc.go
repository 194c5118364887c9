// Package oteladapters provides OpenTelemetry implementations of the holdstore observability interfaces
// (MetricsCollector, TracingCollector, ContextualLogger).
//
// The same adapters serve the command and query handler wrappers, since the shell package
// aliases the holdstore interfaces.
package oteladapters
