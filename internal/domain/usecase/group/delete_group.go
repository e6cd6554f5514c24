package group

import (
	"context"
)

// DeleteGroup removes everything a group owns and then the group itself, in
// dependency order, as one atomic commit. A partial deletion (users removed
// but the group row orphaned) must never be observable.
func (g *GroupUseCase) DeleteGroup(ctx context.Context, groupID string) error {
	if _, err := g.groupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}

	txCtx, err := g.uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := g.uow.Transactions(txCtx).DeleteByGroup(txCtx, groupID); err != nil {
		_ = g.uow.Rollback(txCtx)
		return err
	}
	if err := g.uow.Users(txCtx).DeleteByGroup(txCtx, groupID); err != nil {
		_ = g.uow.Rollback(txCtx)
		return err
	}
	if err := g.uow.Rounds(txCtx).DeleteByGroup(txCtx, groupID); err != nil {
		_ = g.uow.Rollback(txCtx)
		return err
	}
	if err := g.uow.Aggregates(txCtx).DeleteByGroup(txCtx, groupID); err != nil {
		_ = g.uow.Rollback(txCtx)
		return err
	}
	if err := g.uow.Groups(txCtx).Delete(txCtx, groupID); err != nil {
		_ = g.uow.Rollback(txCtx)
		return err
	}

	if err := g.uow.Commit(txCtx); err != nil {
		return err
	}

	g.logger.Info("Group deleted", map[string]any{
		"groupId": groupID,
	})
	return nil
}
