package service

import (
	"context"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/features/command/createitem"
	"github.com/AntonStoeckl/holdqueue/features/command/freezehold"
	"github.com/AntonStoeckl/holdqueue/features/command/placehold"
	"github.com/AntonStoeckl/holdqueue/features/command/returnunit"
	"github.com/AntonStoeckl/holdqueue/features/command/unfreezehold"
	"github.com/AntonStoeckl/holdqueue/features/query/holdsbyrequester"
	"github.com/AntonStoeckl/holdqueue/features/query/itemqueue"
	"github.com/AntonStoeckl/holdqueue/features/query/listitems"
	"github.com/AntonStoeckl/holdqueue/holdstore"
	"github.com/AntonStoeckl/holdqueue/shell"
	"github.com/AntonStoeckl/holdqueue/shell/observable"
)

// Service is the public operation set of the hold queue. It is safe for concurrent use.
type Service struct {
	store            *holdstore.Store
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	retryOptions     []shell.RetryOption

	createItem       *observable.CommandWrapper[createitem.Command, core.Item]
	placeHold        *observable.CommandWrapper[placehold.Command, placehold.Result]
	freezeHold       *observable.CommandWrapper[freezehold.Command, core.Hold]
	unfreezeHold     *observable.CommandWrapper[unfreezehold.Command, unfreezehold.Result]
	returnUnit       *observable.CommandWrapper[returnunit.Command, returnunit.Result]
	itemQueue        *observable.QueryWrapper[itemqueue.Query, itemqueue.ItemQueue]
	holdsByRequester *observable.QueryWrapper[holdsbyrequester.Query, holdsbyrequester.HoldsByRequester]
	listItems        *observable.QueryWrapper[listitems.Query, listitems.Items]
}

// NewService wires all feature handlers against the store.
func NewService(store *holdstore.Store, options ...Option) (*Service, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	s := &Service{store: store}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	if err := s.wireCommands(); err != nil {
		return nil, err
	}

	if err := s.wireQueries(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Service) wireCommands() error {
	var err error

	if s.createItem, err = wrapCommand[createitem.Command, core.Item](s,
		createitem.NewCommandHandler(s.store, createitem.WithRetryOptions(s.retryOptions...)),
	); err != nil {
		return err
	}

	if s.placeHold, err = wrapCommand[placehold.Command, placehold.Result](s,
		placehold.NewCommandHandler(s.store, placehold.WithRetryOptions(s.retryOptions...)),
	); err != nil {
		return err
	}

	if s.freezeHold, err = wrapCommand[freezehold.Command, core.Hold](s,
		freezehold.NewCommandHandler(s.store, freezehold.WithRetryOptions(s.retryOptions...)),
	); err != nil {
		return err
	}

	if s.unfreezeHold, err = wrapCommand[unfreezehold.Command, unfreezehold.Result](s,
		unfreezehold.NewCommandHandler(s.store, unfreezehold.WithRetryOptions(s.retryOptions...)),
	); err != nil {
		return err
	}

	s.returnUnit, err = wrapCommand[returnunit.Command, returnunit.Result](s,
		returnunit.NewCommandHandler(s.store, returnunit.WithRetryOptions(s.retryOptions...)),
	)

	return err
}

func (s *Service) wireQueries() error {
	var err error

	if s.itemQueue, err = wrapQuery[itemqueue.Query, itemqueue.ItemQueue](s,
		itemqueue.NewQueryHandler(s.store),
	); err != nil {
		return err
	}

	if s.holdsByRequester, err = wrapQuery[holdsbyrequester.Query, holdsbyrequester.HoldsByRequester](s,
		holdsbyrequester.NewQueryHandler(s.store),
	); err != nil {
		return err
	}

	s.listItems, err = wrapQuery[listitems.Query, listitems.Items](s, listitems.NewQueryHandler(s.store))

	return err
}

func wrapCommand[C shell.Command, R any](
	s *Service,
	handler shell.CoreCommandHandler[C, R],
) (*observable.CommandWrapper[C, R], error) {
	return observable.NewCommandWrapper[C, R](
		handler,
		observable.WithCommandMetrics[C, R](s.metricsCollector),
		observable.WithCommandTracing[C, R](s.tracingCollector),
		observable.WithCommandContextualLogging[C, R](s.contextualLogger),
		observable.WithCommandLogging[C, R](s.logger),
	)
}

func wrapQuery[Q shell.Query, R any](
	s *Service,
	handler shell.CoreQueryHandler[Q, R],
) (*observable.QueryWrapper[Q, R], error) {
	return observable.NewQueryWrapper[Q, R](
		handler,
		observable.WithQueryMetrics[Q, R](s.metricsCollector),
		observable.WithQueryTracing[Q, R](s.tracingCollector),
		observable.WithQueryContextualLogging[Q, R](s.contextualLogger),
		observable.WithQueryLogging[Q, R](s.logger),
	)
}

// CreateItem adds an item with unitsTotal units, all of them available.
func (s *Service) CreateItem(ctx context.Context, title string, unitsTotal int) (core.Item, error) {
	command, err := createitem.BuildCommand(title, unitsTotal)
	if err != nil {
		return core.Item{}, s.rejectInvalidCommand(ctx, command, err)
	}

	item, _, err := s.createItem.Handle(ctx, command)

	return item, err
}

// PlaceHold appends a hold for the requester to the item's queue and returns its position and id.
func (s *Service) PlaceHold(ctx context.Context, requesterKey string, itemID core.ItemID) (placehold.Result, error) {
	command, err := placehold.BuildCommand(requesterKey, itemID)
	if err != nil {
		return placehold.Result{}, s.rejectInvalidCommand(ctx, command, err)
	}

	result, _, err := s.placeHold.Handle(ctx, command)

	return result, err
}

// Freeze makes the requester's hold ineligible for assignments. Its position is kept.
func (s *Service) Freeze(ctx context.Context, requesterKey string, holdID core.HoldID) (core.Hold, error) {
	command, err := freezehold.BuildCommand(requesterKey, holdID)
	if err != nil {
		return core.Hold{}, s.rejectInvalidCommand(ctx, command, err)
	}

	hold, _, err := s.freezeHold.Handle(ctx, command)

	return hold, err
}

// Unfreeze makes the requester's hold eligible again and attempts one assignment for its item.
func (s *Service) Unfreeze(ctx context.Context, requesterKey string, holdID core.HoldID) (unfreezehold.Result, error) {
	command, err := unfreezehold.BuildCommand(requesterKey, holdID)
	if err != nil {
		return unfreezehold.Result{}, s.rejectInvalidCommand(ctx, command, err)
	}

	result, _, err := s.unfreezeHold.Handle(ctx, command)

	return result, err
}

// ReturnUnit puts one unit of the item back, capped at its total, and attempts one assignment.
func (s *Service) ReturnUnit(ctx context.Context, itemID core.ItemID) (returnunit.Result, error) {
	command, err := returnunit.BuildCommand(itemID)
	if err != nil {
		return returnunit.Result{}, s.rejectInvalidCommand(ctx, command, err)
	}

	result, _, err := s.returnUnit.Handle(ctx, command)

	return result, err
}

// GetQueue returns all holds of the item in position order.
func (s *Service) GetQueue(ctx context.Context, itemID core.ItemID) (itemqueue.ItemQueue, error) {
	query, err := itemqueue.BuildQuery(itemID)
	if err != nil {
		return itemqueue.ItemQueue{}, s.rejectInvalidQuery(ctx, query, err)
	}

	return s.itemQueue.Handle(ctx, query)
}

// GetHoldsByRequester returns all holds of the requester, ordered by item id and then position.
func (s *Service) GetHoldsByRequester(ctx context.Context, requesterKey string) (holdsbyrequester.HoldsByRequester, error) {
	query, err := holdsbyrequester.BuildQuery(requesterKey)
	if err != nil {
		return holdsbyrequester.HoldsByRequester{}, s.rejectInvalidQuery(ctx, query, err)
	}

	return s.holdsByRequester.Handle(ctx, query)
}

// ListItems returns all items ordered by id.
func (s *Service) ListItems(ctx context.Context) (listitems.Items, error) {
	return s.listItems.Handle(ctx, listitems.BuildQuery())
}

// rejectInvalidCommand records input that never reached a handler.
func (s *Service) rejectInvalidCommand(ctx context.Context, command shell.Command, err error) error {
	shell.RecordCommandMetrics(ctx, s.metricsCollector, command.CommandType(), shell.StatusValidation, 0)
	shell.LogCommandError(ctx, s.logger, s.contextualLogger, command.CommandType(), shell.StatusValidation, err)

	return err
}

// rejectInvalidQuery records query input that never reached a handler.
func (s *Service) rejectInvalidQuery(ctx context.Context, query shell.Query, err error) error {
	shell.RecordQueryMetrics(ctx, s.metricsCollector, query.QueryType(), shell.StatusValidation, 0)
	shell.LogQueryError(ctx, s.logger, s.contextualLogger, query.QueryType(), shell.StatusValidation, err)

	return err
}
