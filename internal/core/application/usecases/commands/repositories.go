// Package commands contains the business operations that modify order state.
// Commands follow a consistent pattern: a constructor-guarded command struct,
// a handler owning transaction management through a unit of work, and
// failures drawn from the closed errs taxonomy.
package commands

import (
	"context"

	"hubfleet/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances, one per
	// handled command.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
