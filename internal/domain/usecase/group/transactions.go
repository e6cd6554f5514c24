package group

import (
	"context"

	"github.com/google/uuid"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
)

// ListTransactions returns the ledger entries of a group's users
func (g *GroupUseCase) ListTransactions(ctx context.Context, groupID string) ([]entity.Transaction, error) {
	return g.transactionRepo.ListByGroup(ctx, groupID)
}

// CreateTransaction appends a ledger entry for a user. The ledger is
// append-only; no aggregation against balances is enforced.
func (g *GroupUseCase) CreateTransaction(ctx context.Context, userID, roundID, transactionType, amount string) (*entity.Transaction, error) {
	if _, err := g.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	transaction := &entity.Transaction{
		ID:              uuid.NewString(),
		UserID:          userID,
		RoundID:         roundID,
		TransactionType: transactionType,
		Amount:          amount,
		CreatedAt:       g.timeProvider.Now(),
	}

	if err := g.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	g.logger.Info("Transaction recorded", map[string]any{
		"userId":          userID,
		"roundId":         roundID,
		"transactionType": transactionType,
		"amount":          amount,
	})

	return transaction, nil
}
