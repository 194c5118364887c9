package freezehold

import "github.com/AntonStoeckl/holdqueue/core"

// Decide returns the frozen version of the hold, or why the requester may not freeze it.
//
// Business Rules:
//
//	GIVEN: A hold with HoldID owned by RequesterKey
//	WHEN: FreezeHold command is received
//	THEN: the hold is frozen, its position is kept
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

	hold.Frozen = true

	return hold, nil
}
