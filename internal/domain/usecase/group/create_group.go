package group

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/entity"
	errs "github.com/GHzOliveira/neurocooperacao-backend/internal/domain/error"
	"github.com/GHzOliveira/neurocooperacao-backend/internal/domain/port/usecase"
)

// CreateGroup creates a group and one round per supplied specification. The
// group row and its rounds are written in a single unit of work.
func (g *GroupUseCase) CreateGroup(ctx context.Context, req usecase.CreateGroupRequest) (*entity.Group, error) {
	group, err := entity.NewGroup(uuid.NewString(), req.Name, g.timeProvider)
	if err != nil {
		return nil, err
	}

	// Duplicate names fail with a conflict regardless of the rounds payload
	_, err = g.groupRepo.GetByName(ctx, req.Name)
	if err == nil {
		return nil, errs.ErrDuplicateGroup
	}
	if !errors.Is(err, errs.ErrGroupNotFound) {
		return nil, err
	}

	txCtx, err := g.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if err := g.uow.Groups(txCtx).Create(txCtx, group); err != nil {
		_ = g.uow.Rollback(txCtx)
		return nil, err
	}

	now := g.timeProvider.Now()
	for _, spec := range req.Rounds {
		round := &entity.Round{
			ID:             uuid.NewString(),
			GroupID:        group.ID,
			NEuro:          spec.NEuro,
			Retribution:    spec.Retribution,
			RetributionQty: spec.RetributionQty,
			Number:         spec.Number,
			CreatedAt:      now,
		}
		if err := g.uow.Rounds(txCtx).Create(txCtx, round); err != nil {
			_ = g.uow.Rollback(txCtx)
			return nil, err
		}
	}

	if err := g.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	g.logger.Info("Group created", map[string]any{
		"groupId": group.ID,
		"name":    group.Name,
		"rounds":  len(req.Rounds),
	})

	return group, nil
}
