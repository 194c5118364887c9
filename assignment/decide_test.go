package assignment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/holdqueue/assignment"
	"github.com/AntonStoeckl/holdqueue/core"
)

func Test_Decide(t *testing.T) {
	item := core.Item{ID: 1, Title: "X", UnitsTotal: 2, UnitsAvailable: 1}
	a := core.Hold{ID: 1, ItemID: 1, RequesterKey: "a@example.com", Position: 1}
	b := core.Hold{ID: 2, ItemID: 1, RequesterKey: "b@example.com", Position: 2}
	c := core.Hold{ID: 3, ItemID: 1, RequesterKey: "c@example.com", Position: 3}

	frozen := func(h core.Hold) core.Hold {
		h.Frozen = true
		return h
	}
	fulfilled := func(h core.Hold) core.Hold {
		h.Fulfilled = true
		return h
	}

	tests := []struct {
		name     string
		item     core.Item
		queue    []core.Hold
		expected assignment.Decision
	}{
		{
			name:     "first eligible hold wins",
			item:     item,
			queue:    []core.Hold{a, b, c},
			expected: assignment.AssignDecision(a.ID),
		},
		{
			name:     "frozen hold is skipped",
			item:     item,
			queue:    []core.Hold{frozen(a), b, c},
			expected: assignment.AssignDecision(b.ID),
		},
		{
			name:     "fulfilled hold is skipped",
			item:     item,
			queue:    []core.Hold{fulfilled(a), frozen(b), c},
			expected: assignment.AssignDecision(c.ID),
		},
		{
			name:     "queue order follows position not slice order",
			item:     item,
			queue:    []core.Hold{c, b, a},
			expected: assignment.AssignDecision(a.ID),
		},
		{
			name:     "no units available",
			item:     core.Item{ID: 1, Title: "X", UnitsTotal: 2, UnitsAvailable: 0},
			queue:    []core.Hold{a, b},
			expected: assignment.NoUnitsAvailableDecision(),
		},
		{
			name:     "no eligible hold keeps the unit",
			item:     item,
			queue:    []core.Hold{frozen(a), fulfilled(b)},
			expected: assignment.NoEligibleHoldDecision(),
		},
		{
			name:     "empty queue",
			item:     item,
			queue:    nil,
			expected: assignment.NoEligibleHoldDecision(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// act
			decision := assignment.Decide(tc.item, tc.queue)

			// assert
			assert.Equal(t, tc.expected, decision)
		})
	}
}

func Test_Decision_AssignedTo(t *testing.T) {
	id, ok := assignment.AssignDecision(7).AssignedTo()
	assert.True(t, ok)
	assert.Equal(t, core.HoldID(7), id)

	id, ok = assignment.NoEligibleHoldDecision().AssignedTo()
	assert.False(t, ok)
	assert.Zero(t, id)
}
