// Package core contains the domain model of the hold queue:
// items with a limited pool of lendable units and the holds requesters place on them.
//
// Holds of one item form a queue ordered by position. A position is assigned once, when the hold is
// placed, and never changes afterward. Holds are append-only; they are never removed from the state.
//
// All types in this package are plain values. State is the aggregate that owns every item and hold and
// enforces the structural invariants (sequential identifiers, unique positions per item, at most one
// unfulfilled hold per item and requester). It is not safe for concurrent use; the holdstore package
// serializes access to it.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
