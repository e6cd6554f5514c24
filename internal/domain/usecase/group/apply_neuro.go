package group

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/usecase"
)

// ApplyNEuro applies a per-round deduction. When a user id is supplied the
// amount is subtracted from that user's balance (balances may go negative).
// The group's aggregate values are then upserted: created with the amount and
// count on first use, otherwise the amount is added to the pool and the count
// is ADDED to the stored member counter. The additive counter is a bookkeeping
// quirk carried over from the stored data: it accumulates contributions rather
// than tracking a live headcount.
func (g *GroupUseCase) ApplyNEuro(ctx context.Context, req usecase.ApplyNEuroRequest) (*usecase.ApplyNEuroResult, error) {
	amount, err := entity.ParseAmount(req.NEuro)
	if err != nil {
		return nil, err
	}

	txCtx, err := g.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result := &usecase.ApplyNEuroResult{}

	if req.UserID != "" {
		user, err := g.uow.Users(txCtx).GetByID(txCtx, req.UserID)
		if err != nil {
			_ = g.uow.Rollback(txCtx)
			return nil, err
		}
		if user.NEuro != "" {
			if err := user.Deduct(amount); err != nil {
				_ = g.uow.Rollback(txCtx)
				return nil, err
			}
			if err := g.uow.Users(txCtx).UpdateBalance(txCtx, user.ID, user.NEuro); err != nil {
				_ = g.uow.Rollback(txCtx)
				return nil, err
			}
			result.UserBalance = user.NEuro
		}
	}

	values, err := g.uow.Aggregates(txCtx).GetByGroup(txCtx, req.GroupID)
	switch {
	case errors.Is(err, errs.ErrAggregateNotFound):
		now := g.timeProvider.Now()
		values = &entity.AggregateValues{
			ID:           uuid.NewString(),
			GroupID:      req.GroupID,
			TotalNEuro:   entity.FormatAmount(amount),
			TotalUsers:   req.TotalUsers,
			RetainedFund: "0",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := g.uow.Aggregates(txCtx).Create(txCtx, values); err != nil {
			_ = g.uow.Rollback(txCtx)
			return nil, err
		}
	case err != nil:
		_ = g.uow.Rollback(txCtx)
		return nil, err
	default:
		if err := values.Accumulate(amount, req.TotalUsers); err != nil {
			_ = g.uow.Rollback(txCtx)
			return nil, err
		}
		values.UpdatedAt = g.timeProvider.Now()
		if err := g.uow.Aggregates(txCtx).Update(txCtx, values); err != nil {
			_ = g.uow.Rollback(txCtx)
			return nil, err
		}
	}

	if err := g.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	g.logger.Info("nEuro applied", map[string]any{
		"groupId":    req.GroupID,
		"userId":     req.UserID,
		"amount":     req.NEuro,
		"totalNEuro": values.TotalNEuro,
		"totalUsers": values.TotalUsers,
	})

	result.Values = values
	return result, nil
}
