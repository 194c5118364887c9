package assignment

import "github.com/AntonStoeckl/holdqueue/core"

// TryAssign makes exactly one assignment attempt for the item and applies it to the state.
// On assignment the selected hold is marked fulfilled and the item loses one available unit.
func TryAssign(state *core.State, itemID core.ItemID) (Decision, error) {
	item, ok := state.Item(itemID)
	if !ok {
		return Decision{}, core.ErrItemNotFound
	}

	decision := Decide(item, state.Queue(itemID))

	holdID, assigned := decision.AssignedTo()
	if !assigned {
		return decision, nil
	}

	hold, _ := state.Hold(holdID)
	hold.Fulfilled = true

	state.PutHold(hold)
	state.PutItem(item.WithUnitConsumed())

	return decision, nil
}
