package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-statement domain operations (settlement, group
// deletion, applyNEuro) so each runs as one atomic commit and rolls back as a
// whole on any step's failure
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Groups returns a group repository bound to the current transaction
	Groups(ctx context.Context) GroupRepository

	// Rounds returns a round repository bound to the current transaction
	Rounds(ctx context.Context) RoundRepository

	// Users returns a user repository bound to the current transaction
	Users(ctx context.Context) UserRepository

	// Aggregates returns an aggregate repository bound to the current transaction
	Aggregates(ctx context.Context) AggregateRepository

	// Transactions returns a ledger repository bound to the current transaction
	Transactions(ctx context.Context) TransactionRepository
}
