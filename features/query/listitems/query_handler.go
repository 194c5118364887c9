package listitems

import (
	"context"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/shell"
)

// QueryHandler reads all items from the committed state.
type QueryHandler struct {
	store shell.ViewsState
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store shell.ViewsState) QueryHandler {
	return QueryHandler{store: store}
}

// Handle returns all items ordered by id.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (Items, error) {
	var result Items

	err := h.store.View(ctx, func(state core.StateReader) error {
		result.Items = append([]core.Item{}, state.Items()...)
		result.Count = len(result.Items)
		return nil
	})
	if err != nil {
		return Items{}, err
	}

	return result, nil
}
