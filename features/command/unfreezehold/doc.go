// Package unfreezehold implements the Unfreeze Hold use case.
//
// Unfreezing makes the hold eligible again and then attempts exactly one assignment for its item,
// in the same transaction. The unfrozen hold itself is fulfilled only if it is the first eligible hold.
package unfreezehold
