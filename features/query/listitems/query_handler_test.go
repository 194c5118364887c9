package listitems_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/features/query/listitems"
	"github.com/AntonStoeckl/holdqueue/holdstore"
	"github.com/AntonStoeckl/holdqueue/testutil/persistence"
)

func Test_QueryHandler_Handle_ListsItemsByID(t *testing.T) {
	// arrange
	ctx := context.Background()
	store, err := holdstore.NewStore(ctx, persistence.NewMemoryPersister())
	require.NoError(t, err)
	require.NoError(t, store.RunInTransaction(ctx, func(tx *core.State) error {
		tx.AddItem("Dune", 2)
		tx.AddItem("Solaris", 1)
		return nil
	}))

	// act
	result, err := listitems.NewQueryHandler(store).Handle(ctx, listitems.BuildQuery())

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, []core.Item{
		{ID: 1, Title: "Dune", UnitsTotal: 2, UnitsAvailable: 2},
		{ID: 2, Title: "Solaris", UnitsTotal: 1, UnitsAvailable: 1},
	}, result.Items)
}

func Test_QueryHandler_Handle_CanceledContext(t *testing.T) {
	// arrange
	store, err := holdstore.NewStore(context.Background(), persistence.NewMemoryPersister())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	_, err = listitems.NewQueryHandler(store).Handle(ctx, listitems.BuildQuery())

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}
