// Package service exposes the hold queue operations as one facade.
//
// Every operation validates its input first, then runs the feature slice's handler wrapped with
// observability. Mutating operations each run as one Store transaction; queries read the
// last committed state without taking the writer lock.
package service
