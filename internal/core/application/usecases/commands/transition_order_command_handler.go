package commands

import (
	"context"

	"hubfleet/internal/core/domain/model/order"
	"hubfleet/internal/pkg/errs"
)

// TransitionOrderCommandHandler enforces the order status machine on top of
// the order store. Every exit path is either the updated order or exactly
// one tag from the errs taxonomy:
//
//	ObjectNotFound         - no order with the given id
//	HubMismatch            - order routed through a different hub
//	OrderFinalized         - order already delivered or canceled
//	ConcurrentModification - a concurrent transition won the race
//	StoreReadFailed        - store read I/O error
//	StoreWriteFailed       - store write I/O error
//
// The hub check runs before the finalization check so a caller outside the
// hub cannot learn the order's current status from the error class.
//
// The read and the conditional write leave a race window; the write being a
// compare-and-swap on the status column is what closes it. Of N concurrent
// transitions against the same active order exactly one commits, the rest
// observe ConcurrentModification or OrderFinalized depending on when they
// read. Nothing is retried here; a caller retrying re-reads state, so the
// retry is safe with respect to the final persisted status.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for order status
// transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fetches the order, validates hub scope and transition legality,
// then issues the conditional status write. On success the updated aggregate
// is returned.
func (h TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	command TransitionOrderCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, errs.NewStoreWriteError("begin transition transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.BelongsToHub(command.CallerHub()) {
		return nil, errs.NewHubMismatchError(
			aggregate.HubID().String(),
			command.CallerHub().String(),
		)
	}

	priorStatus := aggregate.Status()
	if err = aggregate.TransitionTo(command.Target()); err != nil {
		return nil, err
	}

	if err = repo.UpdateStatus(ctx, aggregate.ID(), priorStatus, aggregate.Status()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewStoreWriteError("commit transition transaction", err)
	}

	return aggregate, nil
}
