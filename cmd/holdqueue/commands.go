package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/holdqueue/core"
	"github.com/AntonStoeckl/holdqueue/service"
)

func newItemCommand(r runner) *cobra.Command {
	item := &cobra.Command{
		Use:   "item",
		Short: "Create and list items",
	}

	var (
		title string
		units int
	)

	create := &cobra.Command{
		Use:   "create",
		Short: "Create an item with a fixed number of units",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, svc *service.Service, _ []string) (any, error) {
			return svc.CreateItem(ctx, title, units)
		}),
	}
	create.Flags().StringVar(&title, "title", "", "item title")
	create.Flags().IntVar(&units, "units", 1, "total number of units")
	_ = create.MarkFlagRequired("title")

	list := &cobra.Command{
		Use:   "list",
		Short: "List all items",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, svc *service.Service, _ []string) (any, error) {
			return svc.ListItems(ctx)
		}),
	}

	item.AddCommand(create, list)

	return item
}

func newHoldCommand(r runner) *cobra.Command {
	hold := &cobra.Command{
		Use:   "hold",
		Short: "Place, freeze, unfreeze and list holds",
	}

	place := &cobra.Command{
		Use:   "place <requester> <item-id>",
		Short: "Place a hold on an item at the end of its queue",
		Args:  cobra.ExactArgs(2),
		RunE: r.run(func(ctx context.Context, svc *service.Service, args []string) (any, error) {
			itemID, err := parseItemID(args[1])
			if err != nil {
				return nil, err
			}

			return svc.PlaceHold(ctx, args[0], itemID)
		}),
	}

	freeze := &cobra.Command{
		Use:   "freeze <requester> <hold-id>",
		Short: "Freeze a hold so it is skipped without losing its position",
		Args:  cobra.ExactArgs(2),
		RunE: r.run(func(ctx context.Context, svc *service.Service, args []string) (any, error) {
			holdID, err := parseHoldID(args[1])
			if err != nil {
				return nil, err
			}

			return svc.Freeze(ctx, args[0], holdID)
		}),
	}

	unfreeze := &cobra.Command{
		Use:   "unfreeze <requester> <hold-id>",
		Short: "Unfreeze a hold and try to assign an available unit",
		Args:  cobra.ExactArgs(2),
		RunE: r.run(func(ctx context.Context, svc *service.Service, args []string) (any, error) {
			holdID, err := parseHoldID(args[1])
			if err != nil {
				return nil, err
			}

			return svc.Unfreeze(ctx, args[0], holdID)
		}),
	}

	list := &cobra.Command{
		Use:   "list <requester>",
		Short: "List all holds of a requester",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, svc *service.Service, args []string) (any, error) {
			return svc.GetHoldsByRequester(ctx, args[0])
		}),
	}

	hold.AddCommand(place, freeze, unfreeze, list)

	return hold
}

func newUnitCommand(r runner) *cobra.Command {
	unit := &cobra.Command{
		Use:   "unit",
		Short: "Return units of an item",
	}

	ret := &cobra.Command{
		Use:   "return <item-id>",
		Short: "Return one unit and assign it to the first eligible hold",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, svc *service.Service, args []string) (any, error) {
			itemID, err := parseItemID(args[0])
			if err != nil {
				return nil, err
			}

			return svc.ReturnUnit(ctx, itemID)
		}),
	}

	unit.AddCommand(ret)

	return unit
}

func newQueueCommand(r runner) *cobra.Command {
	queue := &cobra.Command{
		Use:   "queue",
		Short: "Inspect item queues",
	}

	show := &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show an item and its holds in position order",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, svc *service.Service, args []string) (any, error) {
			itemID, err := parseItemID(args[0])
			if err != nil {
				return nil, err
			}

			return svc.GetQueue(ctx, itemID)
		}),
	}

	queue.AddCommand(show)

	return queue
}

func parseItemID(raw string) (core.ItemID, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidItemID, raw)
	}

	return core.ItemID(id), nil
}

func parseHoldID(raw string) (core.HoldID, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidHoldID, raw)
	}

	return core.HoldID(id), nil
}
