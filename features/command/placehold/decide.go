package placehold

import "github.com/AntonStoeckl/holdqueue/core"

// Decide checks whether the requester may join the item's queue.
//
// Business Rules:
//
//	GIVEN: An item with ItemID and a requester with RequesterKey
//	WHEN: PlaceHold command is received
//	THEN: a hold is appended to the item's queue
//	ERROR: not found if the item does not exist
//	ERROR: conflict if the requester already has an unfulfilled hold for the item
func Decide(state core.StateReader, command Command) error {
	if _, ok := state.Item(command.ItemID); !ok {
		return core.ErrItemNotFound
	}

	if _, ok := state.ActiveHold(command.ItemID, command.RequesterKey); ok {
		return core.ErrActiveHoldExists
	}

	return nil
}
