package createitem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/features/command/createitem"
	"github.com/AntonStoeckl/holdqueue/holdstore"
	"github.com/AntonStoeckl/holdqueue/shell"
	"github.com/AntonStoeckl/holdqueue/testutil/persistence"
)

func Test_BuildCommand_Validation(t *testing.T) {
	testCases := []struct {
		name        string
		title       string
		unitsTotal  int
		expectedErr error
	}{
		{name: "empty title", title: "", unitsTotal: 1, expectedErr: core.ErrEmptyTitle},
		{name: "blank title", title: "   ", unitsTotal: 1, expectedErr: core.ErrEmptyTitle},
		{name: "zero units", title: "Dune", unitsTotal: 0, expectedErr: core.ErrInvalidUnitsTotal},
		{name: "negative units", title: "Dune", unitsTotal: -3, expectedErr: core.ErrInvalidUnitsTotal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := createitem.BuildCommand(tc.title, tc.unitsTotal)

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.ErrorIs(t, err, core.ErrValidation)
		})
	}
}

func Test_CommandHandler_Handle_CreatesItemsWithSequentialIDs(t *testing.T) {
	// arrange
	ctx := context.Background()
	persister := persistence.NewMemoryPersister()
	store, err := holdstore.NewStore(ctx, persister)
	require.NoError(t, err)
	handler := createitem.NewCommandHandler(store)

	first, err := createitem.BuildCommand("  Dune  ", 2)
	require.NoError(t, err)
	second, err := createitem.BuildCommand("Solaris", 1)
	require.NoError(t, err)

	// act
	dune, result, err := handler.Handle(ctx, first)
	require.NoError(t, err)
	solaris, _, err := handler.Handle(ctx, second)
	require.NoError(t, err)

	// assert
	assert.Equal(t, core.Item{ID: 1, Title: "Dune", UnitsTotal: 2, UnitsAvailable: 2}, dune)
	assert.Equal(t, core.Item{ID: 2, Title: "Solaris", UnitsTotal: 1, UnitsAvailable: 1}, solaris)
	assert.Equal(t, shell.StatusSuccess, result.Outcome)
	assert.Equal(t, 1, result.RetryAttempts)
	assert.Equal(t, 2, persister.SaveCount())
	assert.Empty(t, store.Current().Holds())
}

func Test_CommandHandler_Handle_RetriesTransientPersistFailure(t *testing.T) {
	// arrange
	ctx := context.Background()
	persister := persistence.NewMemoryPersister()
	store, err := holdstore.NewStore(ctx, persister)
	require.NoError(t, err)
	handler := createitem.NewCommandHandler(store, createitem.WithRetryOptions(
		shell.WithMaxAttempts(3),
		shell.WithBaseDelay(0),
	))
	command, err := createitem.BuildCommand("Dune", 1)
	require.NoError(t, err)
	persister.FailNextSaves(1)

	// act
	item, result, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ItemID(1), item.ID, "the failed attempt must not consume an item id")
	assert.Equal(t, 2, result.RetryAttempts)
}

func Test_CommandHandler_Handle_PersistFailureWithoutRetry(t *testing.T) {
	// arrange
	ctx := context.Background()
	persister := persistence.NewMemoryPersister()
	store, err := holdstore.NewStore(ctx, persister)
	require.NoError(t, err)
	handler := createitem.NewCommandHandler(store)
	command, err := createitem.BuildCommand("Dune", 1)
	require.NoError(t, err)
	persister.FailNextSaves(1)

	// act
	_, result, err := handler.Handle(ctx, command)

	// assert
	assert.ErrorIs(t, err, holdstore.ErrPersistingSnapshotFailed)
	assert.Equal(t, 1, result.RetryAttempts)
	assert.Empty(t, store.Current().Items())
}
