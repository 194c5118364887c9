package freezehold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/features/command/freezehold"
)

func Test_Decide(t *testing.T) {
	state := core.NewState()
	item := state.AddItem("Dune", 1)
	active := state.AddHold(item.ID, "ana@example.org")

	fulfilled := state.AddHold(item.ID, "ben@example.org")
	fulfilled.Fulfilled = true
	state.PutHold(fulfilled)

	testCases := []struct {
		name        string
		command     freezehold.Command
		expectedErr error
	}{
		{
			name:    "owner freezes an active hold",
			command: freezehold.Command{RequesterKey: "ana@example.org", HoldID: active.ID},
		},
		{
			name:        "unknown hold",
			command:     freezehold.Command{RequesterKey: "ana@example.org", HoldID: 99},
			expectedErr: core.ErrHoldNotFound,
		},
		{
			name:        "another requester",
			command:     freezehold.Command{RequesterKey: "ben@example.org", HoldID: active.ID},
			expectedErr: core.ErrNotHoldOwner,
		},
		{
			name:        "fulfilled hold",
			command:     freezehold.Command{RequesterKey: "ben@example.org", HoldID: fulfilled.ID},
			expectedErr: core.ErrHoldAlreadyFulfilled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hold, err := freezehold.Decide(state, tc.command)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, hold.Frozen)
			assert.Equal(t, active.Position, hold.Position)
		})
	}
}
