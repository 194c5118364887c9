// Package shell contains the infrastructure side shared by all hold queue feature slices:
// the command and query contracts, the HandlerResult returned by command handlers,
// retry with exponential backoff for transient persistence failures,
// and the helpers that record metrics, spans, and log lines for handlers.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
