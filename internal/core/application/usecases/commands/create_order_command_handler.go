package commands

import (
	"context"

	"hubfleet/internal/core/domain/model/order"
	"hubfleet/internal/pkg/errs"
)

// CreateOrderCommandHandler persists new orders arriving from checkout.
// Orders always start in active status; the handler never sets anything
// else.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the aggregate and saves it within a transaction. Returns
// the created order so the transport layer can echo it back.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	command CreateOrderCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		command.OrderID(),
		command.HubID(),
		command.CustomerID(),
		command.Items(),
		command.OrderDate(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, errs.NewStoreWriteError("begin create transaction", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewStoreWriteError("commit create transaction", err)
	}

	return aggregate, nil
}
