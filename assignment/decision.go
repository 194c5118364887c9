package assignment

import "github.com/AntonStoeckl/holdqueue/core"

// Decision represents the outcome of one assignment attempt.
//
// IMPORTANT: Decision should only be constructed using the provided factory methods:
// NoUnitsAvailableDecision(), NoEligibleHoldDecision(), or AssignDecision(holdID).
type Decision struct {
	Outcome string      // "assigned", "no_units_available", or "no_eligible_hold"
	HoldID  core.HoldID // zero unless assigned
}

const (
	// OutcomeAssigned means a hold was selected to receive a unit.
	OutcomeAssigned = "assigned"

	// OutcomeNoUnitsAvailable means the item had no unit to hand out.
	OutcomeNoUnitsAvailable = "no_units_available"

	// OutcomeNoEligibleHold means a unit was available but every hold is frozen or fulfilled.
	OutcomeNoEligibleHold = "no_eligible_hold"
)

// NoUnitsAvailableDecision creates a Decision for an item without available units.
func NoUnitsAvailableDecision() Decision {
	return Decision{Outcome: OutcomeNoUnitsAvailable}
}

// NoEligibleHoldDecision creates a Decision for a queue without eligible holds.
func NoEligibleHoldDecision() Decision {
	return Decision{Outcome: OutcomeNoEligibleHold}
}

// AssignDecision creates a Decision that hands a unit to the given hold.
func AssignDecision(holdID core.HoldID) Decision {
	return Decision{Outcome: OutcomeAssigned, HoldID: holdID}
}

// IsAssigned reports whether a hold was selected.
func (d Decision) IsAssigned() bool {
	return d.Outcome == OutcomeAssigned
}

// AssignedTo returns the selected hold id and true, or zero and false.
func (d Decision) AssignedTo() (core.HoldID, bool) {
	if !d.IsAssigned() {
		return 0, false
	}

	return d.HoldID, true
}
