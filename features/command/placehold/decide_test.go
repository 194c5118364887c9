package placehold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/features/command/placehold"
)

func Test_Decide(t *testing.T) {
	state := core.NewState()
	item := state.AddItem("Dune", 1)
	state.AddHold(item.ID, "ana@example.org")

	fulfilled := state.AddHold(item.ID, "ben@example.org")
	fulfilled.Fulfilled = true
	state.PutHold(fulfilled)

	testCases := []struct {
		name        string
		command     placehold.Command
		expectedErr error
	}{
		{
			name:    "new requester",
			command: placehold.Command{RequesterKey: "cleo@example.org", ItemID: item.ID},
		},
		{
			name:    "requester whose previous hold was fulfilled",
			command: placehold.Command{RequesterKey: "ben@example.org", ItemID: item.ID},
		},
		{
			name:        "requester with an active hold",
			command:     placehold.Command{RequesterKey: "ana@example.org", ItemID: item.ID},
			expectedErr: core.ErrActiveHoldExists,
		},
		{
			name:        "unknown item",
			command:     placehold.Command{RequesterKey: "cleo@example.org", ItemID: 99},
			expectedErr: core.ErrItemNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := placehold.Decide(state, tc.command)

			if tc.expectedErr == nil {
				require.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func Test_BuildCommand_NormalizesRequesterKey(t *testing.T) {
	command, err := placehold.BuildCommand("  Ana@Example.ORG ", 3)

	require.NoError(t, err)
	assert.Equal(t, "ana@example.org", command.RequesterKey)
	assert.Equal(t, core.ItemID(3), command.ItemID)
}

func Test_BuildCommand_Validation(t *testing.T) {
	_, err := placehold.BuildCommand("not-an-address", 1)
	assert.ErrorIs(t, err, core.ErrInvalidRequesterKey)

	_, err = placehold.BuildCommand("ana@example.org", 0)
	assert.ErrorIs(t, err, core.ErrInvalidItemID)
}
