package itemqueue

import (
	"context"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/shell"
)

// QueryHandler reads item queues from the committed state.
type QueryHandler struct {
	store shell.ViewsState
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store shell.ViewsState) QueryHandler {
	return QueryHandler{store: store}
}

// Handle returns the queue of the item, or core.ErrItemNotFound.
func (h QueryHandler) Handle(ctx context.Context, query Query) (ItemQueue, error) {
	var result ItemQueue

	err := h.store.View(ctx, func(state core.StateReader) error {
		item, ok := state.Item(query.ItemID)
		if !ok {
			return core.ErrItemNotFound
		}

		result = ItemQueue{
			Item:  item,
			Holds: append([]core.Hold{}, state.Queue(query.ItemID)...),
		}

		return nil
	})
	if err != nil {
		return ItemQueue{}, err
	}

	return result, nil
}
