package group

import (
	"context"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/usecase"
)

// NextRound settles the current round for a group: the pooled nEuro is split
// evenly across members (floored), the most recent round's retribution rule is
// applied on top, each member's prior balance is added back, and the floor
// remainder is carried into the retained fund.
//
// The whole settlement runs in one unit of work, so a failure while updating
// any member rolls every prior balance update back. Settlements for the same
// group are serialized through the group lock; concurrent calls fail fast with
// ErrGroupLocked instead of racing on the aggregate read-then-write.
func (g *GroupUseCase) NextRound(ctx context.Context, groupID string) (*usecase.SettlementResult, error) {
	if err := g.lockRepo.AcquireLock(ctx, groupID, g.lockTimeout); err != nil {
		return nil, err
	}
	defer func() {
		if err := g.lockRepo.ReleaseLock(ctx, groupID); err != nil {
			g.logger.Warn("Failed to release group lock", map[string]any{
				"groupId": groupID,
				"error":   err.Error(),
			})
		}
	}()

	txCtx, err := g.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	// Preconditions are checked before any user is mutated
	values, err := g.uow.Aggregates(txCtx).GetByGroup(txCtx, groupID)
	if err != nil {
		_ = g.uow.Rollback(txCtx)
		return nil, err
	}

	round, err := g.uow.Rounds(txCtx).Latest(txCtx, groupID)
	if err != nil {
		_ = g.uow.Rollback(txCtx)
		return nil, err
	}

	pool, err := values.Pool()
	if err != nil {
		_ = g.uow.Rollback(txCtx)
		return nil, err
	}

	settlement, err := entity.ComputeSettlement(pool, values.TotalUsers)
	if err != nil {
		_ = g.uow.Rollback(txCtx)
		return nil, errs.NewSettlementError(groupID, values.TotalNEuro, values.TotalUsers, err)
	}

	users, err := g.uow.Users(txCtx).ListByGroup(txCtx, groupID)
	if err != nil {
		_ = g.uow.Rollback(txCtx)
		return nil, err
	}

	for i := range users {
		user := &users[i]

		adjusted, err := entity.AdjustedShare(settlement.Share, round.Retribution, round.RetributionQty)
		if err != nil {
			_ = g.uow.Rollback(txCtx)
			return nil, errs.NewSettlementError(groupID, values.TotalNEuro, values.TotalUsers, err)
		}

		balance, err := user.Balance()
		if err != nil {
			_ = g.uow.Rollback(txCtx)
			return nil, err
		}

		newBalance := entity.FormatAmount(adjusted + balance)
		if err := g.uow.Users(txCtx).UpdateBalance(txCtx, user.ID, newBalance); err != nil {
			_ = g.uow.Rollback(txCtx)
			return nil, err
		}
	}

	values.TotalNEuro = "0"
	values.RetainedFund = entity.FormatAmount(settlement.Retained)
	values.UpdatedAt = g.timeProvider.Now()
	if err := g.uow.Aggregates(txCtx).Update(txCtx, values); err != nil {
		_ = g.uow.Rollback(txCtx)
		return nil, err
	}

	if err := g.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	result := &usecase.SettlementResult{
		GroupID:      groupID,
		Share:        entity.FormatAmount(settlement.Share),
		RetainedFund: values.RetainedFund,
		UsersSettled: len(users),
	}

	g.logger.Info("Round settled", map[string]any{
		"groupId":      groupID,
		"share":        result.Share,
		"retainedFund": result.RetainedFund,
		"users":        result.UsersSettled,
		"round":        round.Number,
	})

	return result, nil
}

// UpdateTotalNEuro carries the retained fund back into the pool for groups
// that have advanced past round one. No-op when no round with a sequence
// number above one exists.
func (g *GroupUseCase) UpdateTotalNEuro(ctx context.Context, groupID string) error {
	has, err := g.roundRepo.HasNumberAbove(ctx, groupID, 1)
	if err != nil {
		return err
	}
	if !has {
		return nil
	}

	txCtx, err := g.uow.Begin(ctx)
	if err != nil {
		return err
	}

	values, err := g.uow.Aggregates(txCtx).GetByGroup(txCtx, groupID)
	if err != nil {
		_ = g.uow.Rollback(txCtx)
		return err
	}

	pool, err := values.Pool()
	if err != nil {
		_ = g.uow.Rollback(txCtx)
		return err
	}
	retained, err := values.RetainedPool()
	if err != nil {
		_ = g.uow.Rollback(txCtx)
		return err
	}

	values.TotalNEuro = entity.FormatAmount(pool + retained)
	values.UpdatedAt = g.timeProvider.Now()
	if err := g.uow.Aggregates(txCtx).Update(txCtx, values); err != nil {
		_ = g.uow.Rollback(txCtx)
		return err
	}

	if err := g.uow.Commit(txCtx); err != nil {
		return err
	}

	g.logger.Info("Retained fund carried forward", map[string]any{
		"groupId":    groupID,
		"totalNEuro": values.TotalNEuro,
	})
	return nil
}
