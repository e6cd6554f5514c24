package persistence

import (
	"context"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
)

// TransactionRepository defines persistence operations for the append-only
// nEuro ledger
type TransactionRepository interface {
	// Create appends a ledger entry
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByGroup returns the ledger entries of a group's users
	ListByGroup(ctx context.Context, groupID string) ([]entity.Transaction, error)

	// DeleteByGroup removes all ledger entries belonging to a group's users
	DeleteByGroup(ctx context.Context, groupID string) error
}
