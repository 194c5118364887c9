package itemqueue_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/features/query/itemqueue"
	"github.com/AntonStoeckl/holdqueue/holdstore"
	"github.com/AntonStoeckl/holdqueue/testutil/persistence"
)

func Test_QueryHandler_Handle_ReturnsFullQueueInPositionOrder(t *testing.T) {
	// arrange
	ctx := context.Background()
	store, err := holdstore.NewStore(ctx, persistence.NewMemoryPersister())
	require.NoError(t, err)

	var itemID core.ItemID
	require.NoError(t, store.RunInTransaction(ctx, func(tx *core.State) error {
		itemID = tx.AddItem("Dune", 1).ID
		other := tx.AddItem("Solaris", 1).ID

		frozen := tx.AddHold(itemID, "ana@example.org")
		frozen.Frozen = true
		tx.PutHold(frozen)

		fulfilled := tx.AddHold(itemID, "ben@example.org")
		fulfilled.Fulfilled = true
		tx.PutHold(fulfilled)

		tx.AddHold(other, "ana@example.org")
		tx.AddHold(itemID, "cleo@example.org")

		return nil
	}))

	query, err := itemqueue.BuildQuery(itemID)
	require.NoError(t, err)

	// act
	result, err := itemqueue.NewQueryHandler(store).Handle(ctx, query)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Dune", result.Item.Title)
	require.Len(t, result.Holds, 3)
	assert.Equal(t, []core.Position{1, 2, 3}, []core.Position{
		result.Holds[0].Position,
		result.Holds[1].Position,
		result.Holds[2].Position,
	})
	assert.True(t, result.Holds[0].Frozen)
	assert.True(t, result.Holds[1].Fulfilled)
	assert.Equal(t, "cleo@example.org", result.Holds[2].RequesterKey)
}

func Test_QueryHandler_Handle_EmptyQueueIsNotNil(t *testing.T) {
	// arrange
	ctx := context.Background()
	store, err := holdstore.NewStore(ctx, persistence.NewMemoryPersister())
	require.NoError(t, err)
	require.NoError(t, store.RunInTransaction(ctx, func(tx *core.State) error {
		tx.AddItem("Dune", 1)
		return nil
	}))

	// act
	result, err := itemqueue.NewQueryHandler(store).Handle(ctx, itemqueue.Query{ItemID: 1})

	// assert
	require.NoError(t, err)
	assert.NotNil(t, result.Holds)
	assert.Empty(t, result.Holds)
}

func Test_QueryHandler_Handle_UnknownItem(t *testing.T) {
	// arrange
	ctx := context.Background()
	store, err := holdstore.NewStore(ctx, persistence.NewMemoryPersister())
	require.NoError(t, err)

	// act
	_, err = itemqueue.NewQueryHandler(store).Handle(ctx, itemqueue.Query{ItemID: 7})

	// assert
	assert.ErrorIs(t, err, core.ErrItemNotFound)
}
