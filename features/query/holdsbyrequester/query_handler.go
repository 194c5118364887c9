package holdsbyrequester

import (
	"context"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/shell"
)

// QueryHandler reads the holds of a requester from the committed state.
type QueryHandler struct {
	store shell.ViewsState
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(store shell.ViewsState) QueryHandler {
	return QueryHandler{store: store}
}

// Handle returns the holds of the requester. A requester without holds gets an empty list.
func (h QueryHandler) Handle(ctx context.Context, query Query) (HoldsByRequester, error) {
	result := HoldsByRequester{RequesterKey: query.RequesterKey}

	err := h.store.View(ctx, func(state core.StateReader) error {
		result.Holds = append([]core.Hold{}, state.HoldsByRequester(query.RequesterKey)...)
		return nil
	})
	if err != nil {
		return HoldsByRequester{}, err
	}

	return result, nil
}
