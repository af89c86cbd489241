package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after Begin share its
// transaction; repositories obtained without Begin read from the pool directly.
type UnitOfWork interface {
	// Begin starts a transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	ShipmentRepository() ShipmentRepository
}
