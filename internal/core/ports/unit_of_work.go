package ports

import "context"

// UnitOfWork coordinates a database transaction around repository calls.
// Each business operation gets its own instance; instances are not safe for
// concurrent use.
type UnitOfWork interface {
	// Begin starts the transaction. Calling Begin on an instance with an
	// open transaction is a no-op.
	Begin(ctx context.Context) error

	// Commit makes all changes since Begin durable and closes the
	// transaction.
	Commit(ctx context.Context) error

	// Rollback discards all changes since Begin and closes the transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the open transaction,
	// or to the base connection when no transaction is active.
	OrderRepository() OrderRepository
}
