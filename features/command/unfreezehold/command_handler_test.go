package unfreezehold_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/features/command/unfreezehold"
	"github.com/AntonStoeckl/holdqueue/holdstore"
	"github.com/AntonStoeckl/holdqueue/shell"
	"github.com/AntonStoeckl/holdqueue/testutil/persistence"
)

// newStoreWithFrozenHolds creates one item and one frozen hold per requester, in order.
func newStoreWithFrozenHolds(t *testing.T, unitsAvailable int, requesters ...core.RequesterKey) (*holdstore.Store, core.ItemID) {
	t.Helper()

	ctx := context.Background()
	store, err := holdstore.NewStore(ctx, persistence.NewMemoryPersister())
	require.NoError(t, err)

	var itemID core.ItemID
	require.NoError(t, store.RunInTransaction(ctx, func(tx *core.State) error {
		item := tx.AddItem("Dune", len(requesters)+1)
		item.UnitsAvailable = unitsAvailable
		tx.PutItem(item)
		itemID = item.ID

		for _, key := range requesters {
			hold := tx.AddHold(itemID, key)
			hold.Frozen = true
			tx.PutHold(hold)
		}

		return nil
	}))

	return store, itemID
}

func Test_CommandHandler_Handle_AssignsUnfrozenHoldWhenUnitAvailable(t *testing.T) {
	// arrange
	ctx := context.Background()
	store, itemID := newStoreWithFrozenHolds(t, 1, "ana@example.org")
	handler := unfreezehold.NewCommandHandler(store)
	command, err := unfreezehold.BuildCommand("ana@example.org", 1)
	require.NoError(t, err)

	// act
	result, handlerResult, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	require.NotNil(t, result.AssignedTo)
	assert.Equal(t, core.HoldID(1), *result.AssignedTo)
	assert.True(t, result.Hold.Fulfilled)
	assert.False(t, result.Hold.Frozen)
	assert.Equal(t, shell.StatusAssigned, handlerResult.Outcome)

	item, _ := store.Current().Item(itemID)
	assert.Equal(t, 0, item.UnitsAvailable)
}

func Test_CommandHandler_Handle_NoUnitAvailable(t *testing.T) {
	// arrange
	ctx := context.Background()
	store, _ := newStoreWithFrozenHolds(t, 0, "ana@example.org")
	handler := unfreezehold.NewCommandHandler(store)
	command, err := unfreezehold.BuildCommand("ana@example.org", 1)
	require.NoError(t, err)

	// act
	result, handlerResult, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	assert.Nil(t, result.AssignedTo)
	assert.False(t, result.Hold.Frozen)
	assert.False(t, result.Hold.Fulfilled)
	assert.Equal(t, shell.StatusNoAssignment, handlerResult.Outcome)
}

func Test_CommandHandler_Handle_AssignsEarlierEligibleHold(t *testing.T) {
	// arrange
	ctx := context.Background()
	store, itemID := newStoreWithFrozenHolds(t, 1, "ana@example.org", "ben@example.org")
	require.NoError(t, store.RunInTransaction(ctx, func(tx *core.State) error {
		hold, _ := tx.Hold(1)
		hold.Frozen = false
		tx.PutHold(hold)
		return nil
	}))

	handler := unfreezehold.NewCommandHandler(store)
	command, err := unfreezehold.BuildCommand("ben@example.org", 2)
	require.NoError(t, err)

	// act
	result, _, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	require.NotNil(t, result.AssignedTo)
	assert.Equal(t, core.HoldID(1), *result.AssignedTo, "the unit goes to the first eligible position")
	assert.False(t, result.Hold.Fulfilled)

	queue := store.Current().Queue(itemID)
	assert.True(t, queue[0].Fulfilled)
	assert.False(t, queue[1].Fulfilled)
}

func Test_CommandHandler_Handle_FulfilledHoldIsConflict(t *testing.T) {
	// arrange
	ctx := context.Background()
	store, _ := newStoreWithFrozenHolds(t, 1, "ana@example.org")
	handler := unfreezehold.NewCommandHandler(store)
	command, err := unfreezehold.BuildCommand("ana@example.org", 1)
	require.NoError(t, err)
	_, _, err = handler.Handle(ctx, command)
	require.NoError(t, err)

	// act
	_, _, err = handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, core.ErrHoldAlreadyFulfilled)
}
