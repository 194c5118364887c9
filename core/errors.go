package core

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by a hold queue operation wraps exactly one of them,
// so callers can classify failures with errors.Is.
var (
	// ErrValidation is the category for malformed input, rejected before any state is read.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is the category for unknown item or hold identifiers.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is the category for requesters acting on holds they do not own.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict is the category for operations that contradict the current state.
	ErrConflict = errors.New("conflict")
)

var (
	// ErrEmptyTitle is returned when an item is created without a title.
	ErrEmptyTitle = fmt.Errorf("%w: title must not be empty", ErrValidation)

	// ErrInvalidUnitsTotal is returned when an item is created with a non-positive number of units.
	ErrInvalidUnitsTotal = fmt.Errorf("%w: units total must be a positive integer", ErrValidation)

	// ErrInvalidRequesterKey is returned when a requester key fails the format check.
	ErrInvalidRequesterKey = fmt.Errorf("%w: requester key is not a valid contact address", ErrValidation)

	// ErrInvalidItemID is returned for item identifiers that can never exist.
	ErrInvalidItemID = fmt.Errorf("%w: item id must be a positive integer", ErrValidation)

	// ErrInvalidHoldID is returned for hold identifiers that can never exist.
	ErrInvalidHoldID = fmt.Errorf("%w: hold id must be a positive integer", ErrValidation)

	// ErrItemNotFound is returned when the referenced item does not exist.
	ErrItemNotFound = fmt.Errorf("%w: item does not exist", ErrNotFound)

	// ErrHoldNotFound is returned when the referenced hold does not exist.
	ErrHoldNotFound = fmt.Errorf("%w: hold does not exist", ErrNotFound)

	// ErrNotHoldOwner is returned when the requester key does not own the referenced hold.
	ErrNotHoldOwner = fmt.Errorf("%w: hold belongs to another requester", ErrForbidden)

	// ErrActiveHoldExists is returned when the requester already waits for the item.
	// The message is stable and may be shown to requesters as is.
	ErrActiveHoldExists = fmt.Errorf("%w: an active hold already exists for this item", ErrConflict)

	// ErrHoldAlreadyFulfilled is returned when freezing or unfreezing a fulfilled hold.
	ErrHoldAlreadyFulfilled = fmt.Errorf("%w: hold is already fulfilled", ErrConflict)

	// ErrInconsistentState is returned when restoring a state that violates the domain invariants.
	ErrInconsistentState = errors.New("state violates domain invariants")
)
