// Package freezehold implements the Freeze Hold use case.
//
// A frozen hold keeps its position but is skipped by assignments until it is unfrozen.
// Freezing changes nothing else and never triggers an assignment attempt.
package freezehold
