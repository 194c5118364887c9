package unfreezehold

import "github.com/AntonStoeckl/holdqueue/core"

// Decide returns the unfrozen version of the hold, or why the requester may not unfreeze it.
//
// Business Rules:
//
//	GIVEN: A hold with HoldID owned by RequesterKey
//	WHEN: UnfreezeHold command is received
//	THEN: the hold is unfrozen, its position is kept, one assignment is attempted for its item
//	ERROR: not found if the hold does not exist
//	ERROR: forbidden if another requester owns the hold
//	ERROR: conflict if the hold is already fulfilled
func Decide(state core.StateReader, command Command) (core.Hold, error) {
	hold, ok := state.Hold(command.HoldID)
	if !ok {
		return core.Hold{}, core.ErrHoldNotFound
	}

	if !hold.IsOwnedBy(command.RequesterKey) {
		return core.Hold{}, core.ErrNotHoldOwner
	}

	if hold.Fulfilled {
		return core.Hold{}, core.ErrHoldAlreadyFulfilled
	}

	hold.Frozen = false

	return hold, nil
}
