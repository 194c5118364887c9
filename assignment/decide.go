package assignment

import (
	"sort"

	"github.com/AntonStoeckl/holdqueue/core"
)

// Decide determines which hold receives the next available unit of an item.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: An item and all holds of its queue
//	WHEN: A unit was returned or a hold was unfrozen
//	THEN: The first hold in ascending position that is neither fulfilled nor frozen is selected
//	NONE: if the item has no available unit
//	NONE: if no hold is eligible, the unit stays available
func Decide(item core.Item, queue []core.Hold) Decision {
	if !item.HasAvailableUnits() {
		return NoUnitsAvailableDecision()
	}

	ordered := queue
	if !sort.SliceIsSorted(queue, func(i, j int) bool { return queue[i].Position < queue[j].Position }) {
		ordered = make([]core.Hold, len(queue))
		copy(ordered, queue)
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })
	}

	for _, hold := range ordered {
		if hold.ItemID == item.ID && hold.IsEligible() {
			return AssignDecision(hold.ID)
		}
	}

	return NoEligibleHoldDecision()
}
