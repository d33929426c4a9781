package commands_test

import (
	"context"
	"errors"
	"testing"

	"hubfleet/internal/core/application/usecases/commands"
	"hubfleet/internal/core/domain/model/kernel"
	"hubfleet/internal/core/domain/model/order"
	"hubfleet/internal/core/ports"
	"hubfleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByHub(
	ctx context.Context, hubID kernel.HubID, page, size int,
) ([]*order.Order, error) {
	args := m.Called(ctx, hubID, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context, id kernel.UUID, expected, next order.Status,
) error {
	args := m.Called(ctx, id, expected, next)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func transitionCmd(t *testing.T, orderID kernel.UUID, target order.Status, hub string) commands.TransitionOrderCommand {
	t.Helper()
	cmd, err := commands.NewTransitionOrderCommand(orderID, target, mustHub(t, hub))
	require.NoError(t, err)
	return cmd
}

func TestTransitionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := activeOrder(t, "hub_hcm")
	cmd := transitionCmd(t, existing.ID(), order.Delivered, "hub_hcm")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("UpdateStatus", mock.Anything, existing.ID(), order.Active, order.Delivered).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd := transitionCmd(t, orderID, order.Delivered, "hub_hcm")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestTransitionOrderCommandHandler_Handle_ForbiddenHub(t *testing.T) {
	ctx := t.Context()
	existing := activeOrder(t, "hub_hn")
	cmd := transitionCmd(t, existing.ID(), order.Delivered, "hub_hcm")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrHubMismatch)
	// no status write attempted, and the order is untouched
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, order.Active, existing.Status())
}

func TestTransitionOrderCommandHandler_Handle_ForbiddenHubPrecedesFinalized(t *testing.T) {
	// A caller outside the hub must get the hub error even for a finalized
	// order, so the error class leaks nothing about the order's status.
	ctx := t.Context()
	existing := activeOrder(t, "hub_hn")
	require.NoError(t, existing.Deliver())
	cmd := transitionCmd(t, existing.ID(), order.Canceled, "hub_hcm")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrHubMismatch)
	assert.NotErrorIs(t, err, errs.ErrOrderFinalized)
}

func TestTransitionOrderCommandHandler_Handle_AlreadyFinalized(t *testing.T) {
	ctx := t.Context()
	existing := activeOrder(t, "hub_hcm")
	require.NoError(t, existing.Deliver())
	cmd := transitionCmd(t, existing.ID(), order.Canceled, "hub_hcm")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOrderFinalized)
	assert.Equal(t, order.Delivered, existing.Status())
}

func TestTransitionOrderCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := t.Context()
	existing := activeOrder(t, "hub_hcm")
	cmd := transitionCmd(t, existing.ID(), order.Delivered, "hub_hcm")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("UpdateStatus", mock.Anything, existing.ID(), order.Active, order.Delivered).
			Return(errs.NewConcurrentModificationError("order status", existing.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConcurrentModification)
}

func TestTransitionOrderCommandHandler_Handle_StoreReadFailure(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd := transitionCmd(t, orderID, order.Delivered, "hub_hcm")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewStoreReadError("get order", errors.New("connection reset"))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStoreReadFailed)
	assert.NotErrorIs(t, err, errs.ErrStoreWriteFailed)
}

func TestTransitionOrderCommandHandler_Handle_StoreWriteFailure(t *testing.T) {
	ctx := t.Context()
	existing := activeOrder(t, "hub_hcm")
	cmd := transitionCmd(t, existing.ID(), order.Canceled, "hub_hcm")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("UpdateStatus", mock.Anything, existing.ID(), order.Active, order.Canceled).
			Return(errs.NewStoreWriteError("update order status", errors.New("deadlock detected"))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStoreWriteFailed)
}

func TestTransitionOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.TransitionOrderCommand // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewTransitionOrderCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestTransitionOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := transitionCmd(t, kernel.NewUUID(), order.Delivered, "hub_hcm")

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewTransitionOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStoreWriteFailed)
}

func TestTransitionOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	existing := activeOrder(t, "hub_hcm")
	cmd := transitionCmd(t, existing.ID(), order.Delivered, "hub_hcm")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("UpdateStatus", mock.Anything, existing.ID(), order.Active, order.Delivered).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransitionOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStoreWriteFailed)
}
